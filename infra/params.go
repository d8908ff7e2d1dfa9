// Package infra declares the cloud resources for the file PDF backend:
// Cognito identity, the DynamoDB table, the Lambda-backed REST API with its
// custom domain, Amplify hosting, and CloudWatch monitoring.
//
// Resources are plain wetwire declarations; references between them are
// direct Go references, and the template is produced by `wetwire-aws build`.
package infra

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
)

// ApiDomainName is the fully-qualified domain the REST API is served from.
// No default: a deployment without it fails at provisioning time.
var ApiDomainName = Parameter{
	Type:        "String",
	Description: "Custom domain name for the REST API (e.g. test.example.com)",
}

// HostedZoneDomain is the Route53 zone the API and hosting records live in.
// No default: a deployment without it fails at provisioning time.
var HostedZoneDomain = Parameter{
	Type:        "String",
	Description: "Domain of the existing Route53 hosted zone (e.g. example.com)",
}

// HostedZoneId identifies the same zone for DNS certificate validation.
var HostedZoneId = Parameter{
	Type:        "AWS::Route53::HostedZone::Id",
	Description: "Id of the existing Route53 hosted zone",
}

// BackendCodeBucket and BackendCodeKey locate the packaged Go binary.
var BackendCodeBucket = Parameter{
	Type:        "String",
	Description: "S3 bucket holding the backend function deployment package",
}

var BackendCodeKey = Parameter{
	Type:        "String",
	Description: "S3 key of the backend function deployment package",
}
