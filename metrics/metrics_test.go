// file: metrics/metrics_test.go
package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCloudWatch struct {
	cloudwatchiface.CloudWatchAPI
	mock.Mock
}

func (m *mockCloudWatch) PutMetricData(in *cloudwatch.PutMetricDataInput) (*cloudwatch.PutMetricDataOutput, error) {
	args := m.Called(in)
	return &cloudwatch.PutMetricDataOutput{}, args.Error(0)
}

func TestPublish_SendsDatum(t *testing.T) {
	cw := new(mockCloudWatch)
	var got *cloudwatch.PutMetricDataInput
	cw.On("PutMetricData", mock.Anything).Run(func(args mock.Arguments) {
		got = args.Get(0).(*cloudwatch.PutMetricDataInput)
	}).Return(nil)

	fixed := time.Date(2024, 8, 17, 15, 0, 0, 0, time.UTC)
	p := NewPublisher(cw, Namespace)
	p.now = func() time.Time { return fixed }

	p.Publish("RequestCount", 1, cloudwatch.StandardUnitCount, map[string]string{"Status": "2xx", "Route": "/fixtures"})

	cw.AssertNumberOfCalls(t, "PutMetricData", 1)
	require.NotNil(t, got)
	assert.Equal(t, "FanConnect", aws.StringValue(got.Namespace))
	require.Len(t, got.MetricData, 1)

	datum := got.MetricData[0]
	assert.Equal(t, "RequestCount", aws.StringValue(datum.MetricName))
	assert.Equal(t, 1.0, aws.Float64Value(datum.Value))
	assert.Equal(t, "Count", aws.StringValue(datum.Unit))
	assert.Equal(t, fixed, aws.TimeValue(datum.Timestamp))
	require.Len(t, datum.Dimensions, 2)
	assert.Equal(t, "Route", aws.StringValue(datum.Dimensions[0].Name))
	assert.Equal(t, "/fixtures", aws.StringValue(datum.Dimensions[0].Value))
	assert.Equal(t, "Status", aws.StringValue(datum.Dimensions[1].Name))
}

func TestPublish_ErrorIsSwallowed(t *testing.T) {
	cw := new(mockCloudWatch)
	cw.On("PutMetricData", mock.Anything).Return(errors.New("throttled"))

	assert.NotPanics(t, func() {
		NewPublisher(cw, Namespace).Publish("RequestLatencyMs", 12.5, "Milliseconds", nil)
	})
	cw.AssertExpectations(t)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NotPanics(t, func() { p.Publish("x", 1, "Count", nil) })
}
