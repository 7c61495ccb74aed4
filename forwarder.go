package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudboostingservice/client-sm-lambdaGD/shared/models"
	log "github.com/sirupsen/logrus"
)

// Port probes against unprotected ports are too noisy to post, whatever
// their severity.
const suppressedFindingType = "Recon:EC2/PortProbeUnprotectedPort"

type poster interface {
	post(ctx context.Context, body []byte) (delivery, error)
}

type forwarder struct {
	cfg     Config
	webhook poster
}

func newForwarder(cfg Config) *forwarder {
	return &forwarder{
		cfg:     cfg,
		webhook: newWebhookClient(cfg.WebhookURL, cfg.Timeout),
	}
}

// forward posts one finding to Slack unless policy suppresses it. Client
// rejections (4xx) are logged and reported as success; server errors and
// transport failures are returned.
func (f *forwarder) forward(ctx context.Context, fields log.Fields, region string, finding models.Finding) (delivery, error) {
	logger := log.WithFields(fields).WithFields(log.Fields{"findingID": finding.ID, "findingType": finding.Type})

	if finding.Type == suppressedFindingType {
		logger.Info("finding type suppressed")
		return delivery{Outcome: outcomeSuppressed}, nil
	}

	c := classify(finding.Severity, f.cfg.MinSeverity)
	body, err := json.Marshal(buildMessage(f.cfg, region, finding, c))
	if err != nil {
		return delivery{}, fmt.Errorf("could not marshal slack body: %w", err)
	}

	if c.Skip {
		logger.WithFields(log.Fields{"severity": fmt.Sprintf("%g", float64(finding.Severity)), "minSeverity": f.cfg.MinSeverity}).
			Info("finding below minimum severity")
		return delivery{Outcome: outcomeSuppressed}, nil
	}

	d, err := f.webhook.post(ctx, body)
	if err != nil {
		logger.WithFields(log.Fields{"outcome": d.Outcome.String(), "error": err}).Error("slack request failed")
		return d, err
	}

	if d.Outcome == outcomeClientRejected {
		rl := logger.WithFields(log.Fields{"status": d.StatusCode, "response": d.Body})
		if d.BodyErr != nil {
			rl = rl.WithField("bodyError", d.BodyErr.Error())
		}
		rl.Errorf("error posting message to slack: %d - %s", d.StatusCode, d.Status)
		return d, nil
	}

	logger.WithFields(log.Fields{"status": d.StatusCode, "severity": string(c.Level)}).Info("message posted")
	return d, nil
}
