package main

import (
	"strings"

	"github.com/gin-gonic/autotls"
	"go.uber.org/zap"

	"microblog/config"
	"microblog/db"
	"microblog/logger"
	"microblog/models"
	"microblog/web"
)

func main() {
	if err := logger.Init(config.LOG_LEVEL, config.DEBUG_MODE); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db.Init()
	models.Init()

	router := web.BuildRouter()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	logger.L.Fatal("server stopped", zap.Error(err))
}
