// REST API: resource tree, Cognito authorizer, proxy methods, deployment,
// and the custom domain with its DNS records.
package infra

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/apigateway"
	"github.com/lex00/wetwire-aws-go/resources/certificatemanager"
	"github.com/lex00/wetwire-aws-go/resources/route53"
)

// ----------------------------------------------------------------------------
// REST API and resource tree
// ----------------------------------------------------------------------------

var BackendAPI = apigateway.RestApi{
	Name:        Sub{String: "${AWS::StackName}-api"},
	Description: "API Gateway for the file PDF management backend",
}

// FilePdfsResource is /filepdfs.
var FilePdfsResource = apigateway.Resource{
	RestApiId: BackendAPI,
	ParentId:  BackendAPI.RootResourceId,
	PathPart:  "filepdfs",
}

// FilePdfByIdResource is /filepdfs/{id}.
var FilePdfByIdResource = apigateway.Resource{
	RestApiId: BackendAPI,
	ParentId:  FilePdfsResource,
	PathPart:  "{id}",
}

// ----------------------------------------------------------------------------
// Authorizer
// ----------------------------------------------------------------------------

// APIAuthorizer validates the caller's Cognito token; the handler then reads
// the verified claims from the request context.
var APIAuthorizer = apigateway.Authorizer{
	Name:           "filepdfs-cognito-authorizer",
	RestApiId:      BackendAPI,
	Type_:          "COGNITO_USER_POOLS",
	IdentitySource: "method.request.header.Authorization",
	ProviderARNs:   []any{UserPool.Arn},
}

// ----------------------------------------------------------------------------
// Methods
// ----------------------------------------------------------------------------

// backendIntegration proxies the method to the backend function.
var backendIntegration = apigateway.Method_Integration{
	Type_:                 "AWS_PROXY",
	IntegrationHttpMethod: "POST",
	Uri: Join{
		Delimiter: "",
		Values: []any{
			"arn:aws:apigateway:",
			AWS_REGION,
			":lambda:path/2015-03-31/functions/",
			BackendFunction.Arn,
			"/invocations",
		},
	},
}

var GetFilePdfsMethod = apigateway.Method{
	RestApiId:         BackendAPI,
	ResourceId:        FilePdfsResource,
	HttpMethod:        "GET",
	AuthorizationType: "COGNITO_USER_POOLS",
	AuthorizerId:      APIAuthorizer,
	Integration:       backendIntegration,
}

var PostFilePdfsMethod = apigateway.Method{
	RestApiId:         BackendAPI,
	ResourceId:        FilePdfsResource,
	HttpMethod:        "POST",
	AuthorizationType: "COGNITO_USER_POOLS",
	AuthorizerId:      APIAuthorizer,
	Integration:       backendIntegration,
}

var DeleteFilePdfMethod = apigateway.Method{
	RestApiId:         BackendAPI,
	ResourceId:        FilePdfByIdResource,
	HttpMethod:        "DELETE",
	AuthorizationType: "COGNITO_USER_POOLS",
	AuthorizerId:      APIAuthorizer,
	RequestParameters: map[string]any{
		"method.request.path.id": true,
	},
	Integration: backendIntegration,
}

// corsPreflightIntegration answers OPTIONS preflights without invoking the
// function. Cached for a day by the browser.
var corsPreflightIntegration = apigateway.Method_Integration{
	Type_: "MOCK",
	RequestTemplates: map[string]any{
		"application/json": `{"statusCode": 200}`,
	},
	IntegrationResponses: []any{
		apigateway.Method_IntegrationResponse{
			StatusCode: "200",
			ResponseParameters: map[string]any{
				"method.response.header.Access-Control-Allow-Origin":  "'*'",
				"method.response.header.Access-Control-Allow-Headers": "'Content-Type,Authorization,X-Amz-Date,X-Api-Key,X-Amz-Security-Token'",
				"method.response.header.Access-Control-Allow-Methods": "'GET,POST,DELETE,PATCH,OPTIONS'",
				"method.response.header.Access-Control-Max-Age":       "'86400'",
			},
		},
	},
}

var corsPreflightResponse = apigateway.Method_MethodResponse{
	StatusCode: "200",
	ResponseParameters: map[string]any{
		"method.response.header.Access-Control-Allow-Origin":  true,
		"method.response.header.Access-Control-Allow-Headers": true,
		"method.response.header.Access-Control-Allow-Methods": true,
		"method.response.header.Access-Control-Max-Age":       true,
	},
}

var OptionsFilePdfsMethod = apigateway.Method{
	RestApiId:         BackendAPI,
	ResourceId:        FilePdfsResource,
	HttpMethod:        "OPTIONS",
	AuthorizationType: "NONE",
	Integration:       corsPreflightIntegration,
	MethodResponses:   []any{corsPreflightResponse},
}

var OptionsFilePdfByIdMethod = apigateway.Method{
	RestApiId:         BackendAPI,
	ResourceId:        FilePdfByIdResource,
	HttpMethod:        "OPTIONS",
	AuthorizationType: "NONE",
	Integration:       corsPreflightIntegration,
	MethodResponses:   []any{corsPreflightResponse},
}

// ----------------------------------------------------------------------------
// Deployment
// ----------------------------------------------------------------------------

var APIDeployment = apigateway.Deployment{
	RestApiId: BackendAPI,
	StageName: "prod",
}

// ----------------------------------------------------------------------------
// Custom domain
// ----------------------------------------------------------------------------

// APICertificate is the regional TLS certificate for the API domain,
// validated through DNS records in the hosted zone.
var APICertificate = certificatemanager.Certificate{
	DomainName:       ApiDomainName,
	ValidationMethod: "DNS",
	DomainValidationOptions: []any{
		certificatemanager.Certificate_DomainValidationOption{
			DomainName:   ApiDomainName,
			HostedZoneId: HostedZoneId,
		},
	},
}

var APICustomDomain = apigateway.DomainName{
	DomainName:             ApiDomainName,
	RegionalCertificateArn: APICertificate,
	EndpointConfiguration: apigateway.DomainName_EndpointConfiguration{
		Types: []any{"REGIONAL"},
	},
}

var APIBasePathMapping = apigateway.BasePathMapping{
	DomainName: APICustomDomain,
	RestApiId:  BackendAPI,
	Stage:      "prod",
}

// APIAliasRecord points the custom domain at the regional endpoint.
var APIAliasRecord = route53.RecordSet{
	HostedZoneName: Sub{String: "${HostedZoneDomain}."},
	Name:           Sub{String: "${ApiDomainName}."},
	Type_:          "A",
	AliasTarget: route53.RecordSet_AliasTarget{
		DNSName:      APICustomDomain.RegionalDomainName,
		HostedZoneId: APICustomDomain.RegionalHostedZoneId,
	},
}
