// Package metrics publishes application metrics to CloudWatch.
// file: metrics/metrics.go
package metrics

import (
	"sort"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"

	"fanconnect/logger"
)

// Namespace for all FanConnect metrics
const Namespace = "FanConnect"

// Publisher records a single datapoint.
type Publisher interface {
	Publish(name string, value float64, unit string, dims map[string]string)
}

// NopPublisher drops everything. Used when metrics are disabled.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(string, float64, string, map[string]string) {}

// CloudWatchPublisher sends each datapoint with PutMetricData.
type CloudWatchPublisher struct {
	client    cloudwatchiface.CloudWatchAPI
	namespace string
	now       func() time.Time
}

// NewCloudWatchPublisher builds a publisher from the default AWS credential
// chain in the given region.
func NewCloudWatchPublisher(region string) (*CloudWatchPublisher, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return NewPublisher(cloudwatch.New(sess), Namespace), nil
}

// NewPublisher wraps an existing CloudWatch client.
func NewPublisher(client cloudwatchiface.CloudWatchAPI, namespace string) *CloudWatchPublisher {
	return &CloudWatchPublisher{client: client, namespace: namespace, now: time.Now}
}

// Publish pushes one datapoint. Failures are logged, never returned.
func (p *CloudWatchPublisher) Publish(name string, value float64, unit string, dims map[string]string) {
	_, err := p.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(p.namespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(name),
				Dimensions: dimensions(dims),
				Timestamp:  aws.Time(p.now()),
				Value:      aws.Float64(value),
				Unit:       aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[metrics.Publish] CloudWatch metric failed (%s): %v", name, err)
	}
}

// dimensions converts a map into CloudWatch dimensions in key order.
func dimensions(dims map[string]string) []*cloudwatch.Dimension {
	keys := make([]string, 0, len(dims))
	for k := range dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*cloudwatch.Dimension, 0, len(keys))
	for _, k := range keys {
		out = append(out, &cloudwatch.Dimension{Name: aws.String(k), Value: aws.String(dims[k])})
	}
	return out
}
