// CloudWatch dashboard and alerting for the backend function.
package infra

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/cloudwatch"
)

// BackendErrorsAlarm fires on any handler error within a five-minute window.
// The handler converts expected conditions (400/404) to responses, so every
// function error indicates a real failure.
var BackendErrorsAlarm = cloudwatch.Alarm{
	AlarmDescription:   "Backend function reported errors",
	Namespace:          "AWS/Lambda",
	MetricName:         "Errors",
	Statistic:          "Sum",
	Period:             300,
	EvaluationPeriods:  1,
	Threshold:          1,
	ComparisonOperator: "GreaterThanOrEqualToThreshold",
	TreatMissingData:   "notBreaching",
	Dimensions: []any{
		cloudwatch.Alarm_Dimension{
			Name:  "FunctionName",
			Value: BackendFunction,
		},
	},
}

// BackendDashboard shows traffic, failures and latency side by side.
var BackendDashboard = cloudwatch.Dashboard{
	DashboardName: Sub{String: "${AWS::StackName}-backend"},
	DashboardBody: Sub{String: `{
  "widgets": [
    {
      "type": "metric",
      "x": 0, "y": 0, "width": 12, "height": 6,
      "properties": {
        "title": "Invocations and errors",
        "region": "${AWS::Region}",
        "stat": "Sum",
        "period": 300,
        "metrics": [
          ["AWS/Lambda", "Invocations", "FunctionName", "${BackendFunction}"],
          ["AWS/Lambda", "Errors", "FunctionName", "${BackendFunction}"],
          ["AWS/Lambda", "Throttles", "FunctionName", "${BackendFunction}"]
        ]
      }
    },
    {
      "type": "metric",
      "x": 12, "y": 0, "width": 12, "height": 6,
      "properties": {
        "title": "Duration",
        "region": "${AWS::Region}",
        "stat": "p95",
        "period": 300,
        "metrics": [
          ["AWS/Lambda", "Duration", "FunctionName", "${BackendFunction}"]
        ]
      }
    }
  ]
}`},
}
