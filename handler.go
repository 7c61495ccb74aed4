package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	lambdaContext "github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/cloudboostingservice/client-sm-lambdaGD/shared/models"
	log "github.com/sirupsen/logrus"
)

func (f *forwarder) handler(awsCtx context.Context, event events.CloudWatchEvent) error {
	stdFields := ctxFields(awsCtx)
	log.WithFields(stdFields).WithFields(log.Fields{"eventID": event.ID, "detailType": event.DetailType}).
		Info("guardduty notifier entry point")

	finding, err := models.ParseFinding(event.Detail)
	if err != nil {
		log.WithFields(stdFields).WithFields(log.Fields{"error": err}).Error("failed to unmarshal finding detail")
		return fmt.Errorf("failed to unmarshal finding detail: %w", err)
	}

	region := event.Region
	if region == "" {
		region = finding.Region
	}

	_, err = f.forward(awsCtx, stdFields, region, finding)
	return err
}

func ctxFields(awsCtx context.Context) log.Fields {
	reqID := ""
	if lambdaCtx, ok := lambdaContext.FromContext(awsCtx); ok {
		reqID = lambdaCtx.AwsRequestID
	}
	return log.Fields{"reqID": reqID}
}
