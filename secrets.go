package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/go-redis/redis/v8"
)

type secretSource interface {
	lookup(ctx context.Context, name string) (string, error)
}

type ssmSecrets struct {
	client ssmiface.SSMAPI
}

func newSSMSecrets(region string) (secretSource, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	return &ssmSecrets{client: ssm.New(sess)}, nil
}

func (s *ssmSecrets) lookup(ctx context.Context, name string) (string, error) {
	out, err := s.client.GetParameterWithContext(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if out.Parameter == nil {
		return "", fmt.Errorf("parameter %s has no value", name)
	}
	return aws.StringValue(out.Parameter.Value), nil
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisSecrets struct {
	conn stringGetter
}

func newRedisSecrets(redisURL string) (secretSource, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &redisSecrets{conn: redis.NewClient(opt)}, nil
}

func (r *redisSecrets) lookup(ctx context.Context, key string) (string, error) {
	v, err := r.conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("key(%s) not found in cache", key)
	} else if err != nil {
		return "", fmt.Errorf("unexpected error during redis fetch(%s), %s", key, err)
	}
	return v, nil
}
