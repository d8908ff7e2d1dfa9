// The backend Lambda function and its IAM role.
package infra

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/iam"
	"github.com/lex00/wetwire-aws-go/resources/lambda"
)

// ----------------------------------------------------------------------------
// Execution role
// ----------------------------------------------------------------------------

var BackendAssumeRolePolicy = PolicyDocument{
	Version: "2012-10-17",
	Statement: []any{
		PolicyStatement{
			Effect:    "Allow",
			Principal: ServicePrincipal{"lambda.amazonaws.com"},
			Action:    "sts:AssumeRole",
		},
	},
}

var BackendLogsPolicy = iam.Role_Policy{
	PolicyName: "backend-logs",
	PolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect: "Allow",
				Action: []any{
					"logs:CreateLogGroup",
					"logs:CreateLogStream",
					"logs:PutLogEvents",
				},
				Resource: "arn:aws:logs:*:*:*",
			},
		},
	},
}

// BackendTablePolicy grants exactly the operations the handler issues, on
// the table and its indexes.
var BackendTablePolicy = iam.Role_Policy{
	PolicyName: "backend-filepdfs-table",
	PolicyDocument: PolicyDocument{
		Version: "2012-10-17",
		Statement: []any{
			PolicyStatement{
				Effect: "Allow",
				Action: []any{
					"dynamodb:PutItem",
					"dynamodb:Query",
					"dynamodb:DeleteItem",
					"dynamodb:Scan",
					"dynamodb:DescribeTable",
				},
				Resource: []any{
					FilePdfsTable.Arn,
					Join{Delimiter: "", Values: []any{FilePdfsTable.Arn, "/index/*"}},
				},
			},
		},
	},
}

var BackendExecutionRole = iam.Role{
	RoleName:                 Sub{String: "${AWS::StackName}-backend-role"},
	AssumeRolePolicyDocument: BackendAssumeRolePolicy,
	Policies:                 []any{BackendLogsPolicy, BackendTablePolicy},
}

// ----------------------------------------------------------------------------
// Function
// ----------------------------------------------------------------------------

// BackendFunction runs the compiled Go handler. The table and index names
// reach the process through the environment, the only configuration channel
// the handler reads.
var BackendFunction = lambda.Function{
	FunctionName:  Sub{String: "${AWS::StackName}-backend"},
	Description:   "CRUD handler for the file PDF API",
	Runtime:       "provided.al2023",
	Handler:       "bootstrap",
	Architectures: []any{"arm64"},
	Code: lambda.Function_Code{
		S3Bucket: BackendCodeBucket,
		S3Key:    BackendCodeKey,
	},
	Role:       BackendExecutionRole.Arn,
	Timeout:    30,
	MemorySize: 128,
	Environment: lambda.Function_Environment{
		Variables: map[string]any{
			"TABLE_NAME": FilePdfsTable,
			"INDEX_NAME": FilePdfIndexName,
		},
	},
}

// APIInvokePermission lets the REST API invoke the backend function.
var APIInvokePermission = lambda.Permission{
	FunctionName: BackendFunction.Arn,
	Action:       "lambda:InvokeFunction",
	Principal:    "apigateway.amazonaws.com",
	SourceArn: Join{
		Delimiter: "",
		Values: []any{
			"arn:aws:execute-api:",
			AWS_REGION,
			":",
			AWS_ACCOUNT_ID,
			":",
			BackendAPI,
			"/*",
		},
	},
}
