package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JaredDoge/BabyRecordBackend/config"
	"github.com/JaredDoge/BabyRecordBackend/middleware"
	"github.com/JaredDoge/BabyRecordBackend/routes"
	"github.com/JaredDoge/BabyRecordBackend/services"
)

func main() {
	seed := flag.Bool("seed", false, "寫入預設照顧者後離開")
	flag.Parse()

	// 初始化日誌
	if err := config.InitLogger(); err != nil {
		log.Fatalf("無法初始化日誌: %v", err)
	}
	defer config.Logger.Sync()

	// 載入設定
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("無法載入設定: %v", err)
	}

	// 初始化資料庫
	db, err := config.InitDB(conf)
	if err != nil {
		log.Fatalf("無法初始化資料庫: %v", err)
	}

	// 僅執行種子資料寫入
	if *seed {
		if err := seedCaregivers(db); err != nil {
			log.Fatalf("種子資料寫入失敗: %v", err)
		}
		return
	}

	// 設定 Gin 模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 建立 Gin 引擎
	r := gin.New()

	// 設定中介層
	middleware.SetupMiddleware(r)

	// 註冊路由
	routes.RegisterRoutes(r, db)

	// 建立 HTTP 伺服器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在 goroutine 中啟動伺服器
	go func() {
		log.Printf("啟動伺服器，監聽埠號: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("伺服器啟動失敗: %v", err)
		}
	}()

	// 等待中斷訊號以實現優雅關閉
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在關閉伺服器...")

	// 建立逾時上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 優雅關閉伺服器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("伺服器關閉失敗: %v", err)
	}

	log.Println("伺服器已關閉")
}

// seedCaregivers 寫入預設照顧者，已存在者沿用原本的 ID
func seedCaregivers(db *gorm.DB) error {
	caregiverService := services.NewCaregiverService(db, config.Logger)
	for _, name := range []string{"阿公", "阿嬤", "爸爸", "媽媽"} {
		id, err := caregiverService.Login(name)
		if err != nil {
			return err
		}
		log.Printf("  - ID: %d, Name: %s", id, name)
	}
	return nil
}
