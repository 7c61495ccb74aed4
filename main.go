package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"
)

var env = newEnv()

func init() {
	setupLogging(env.GetString("LOG_LEVEL"))
}

func main() {
	cfg, err := loadConfig(context.Background(), env, secretSources{
		ssm: func() (secretSource, error) {
			return newSSMSecrets(os.Getenv("AWS_REGION"))
		},
		redis: newRedisSecrets,
	})
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Fatal("failed to load config")
	}
	log.WithFields(log.Fields{"channel": cfg.Channel, "minSeverity": cfg.MinSeverity}).Info("config loaded")

	lambda.Start(newForwarder(cfg).handler)
}
