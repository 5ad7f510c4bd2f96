package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	"github.com/dltmdgh0611/Quicksnippet/config"
	"github.com/dltmdgh0611/Quicksnippet/middleware"
	"github.com/dltmdgh0611/Quicksnippet/routes"
	"github.com/dltmdgh0611/Quicksnippet/services"
)

func main() {
	// 로그 초기화
	if err := config.InitLogger(); err != nil {
		log.Fatalf("로그 초기화 실패: %v", err)
	}
	defer config.Logger.Sync()

	// 설정 로드
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("설정을 로드할 수 없습니다: %v", err)
	}

	// 필수 환경 변수 검사
	if missing := conf.MissingVars(); len(missing) > 0 {
		log.Fatalf("환경 변수가 설정되지 않았습니다: %v", missing)
	}

	// Firestore 클라이언트 초기화 (프로세스 시작 시 1회 생성 후 주입)
	ctx := context.Background()
	var clientOpts []option.ClientOption
	if conf.GoogleCredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(conf.GoogleCredentialsFile))
	}
	firestoreClient, err := firestore.NewClient(ctx, conf.FirestoreProjectID, clientOpts...)
	if err != nil {
		log.Fatalf("Firestore 클라이언트를 초기화할 수 없습니다: %v", err)
	}
	defer firestoreClient.Close()

	// OpenAI 클라이언트 초기화
	openaiClient, err := services.NewOpenAIClient(conf.OpenAIAPIKey, conf.OpenAIAPIEndpoint, conf.OpenAIModel)
	if err != nil {
		log.Fatalf("OpenAI 클라이언트를 초기화할 수 없습니다: %v", err)
	}

	store := services.NewFirestoreStore(firestoreClient)
	notifier := services.NewWebhookNotifier(conf.WebhookURL)

	// Gin 모드 설정
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 미들웨어 설정
	middleware.SetupMiddleware(r)

	// 라우트 등록
	routes.RegisterRoutes(r, openaiClient, store, notifier)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 서버 시작
	go func() {
		log.Printf("서버 시작, 포트: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("서버 시작 실패: %v", err)
		}
	}()

	// 인터럽트 신호 대기 후 우아한 종료
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("서버를 종료하는 중...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("서버 종료 실패: %v", err)
	}

	log.Println("서버가 종료되었습니다")
}
