package main

import (
	"flag"
	"fmt"
	"strings"

	"moneyflow/config"
	"moneyflow/database"
	"moneyflow/logger"
	"moneyflow/middleware"
	"moneyflow/router"

	"github.com/rs/zerolog/log"
)

// @title 个人记账系统 API
// @version 1.0
// @description 账户、收支类别与交易记录管理，交易写入时同步维护账户余额
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("moneyflow v%s\n", version)
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("加载配置失败")
	}

	appLog := logger.New(cfg.Log.Level, cfg.Log.Format)
	logger.SetGlobal(appLog)

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Info().Str("port", port).Msg("命令行指定端口")
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatal().Err(err).Msg("数据库初始化失败")
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg, database.GetDB(), appLog)

	log.Info().
		Str("swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", cfg.Server.Port)).
		Str("api", fmt.Sprintf("http://localhost%s/api/v1/", cfg.Server.Port)).
		Msg("记账系统已启动")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("服务器启动失败")
	}
}
