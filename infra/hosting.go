// Amplify static hosting for the frontend. The app environment carries the
// Cognito pool identifiers and the API URL so the SPA can talk to both.
package infra

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/amplify"
	"github.com/lex00/wetwire-aws-go/resources/certificatemanager"
)

// HostingCertificate covers every subdomain of the hosted zone, the form
// the CDN in front of Amplify requires.
var HostingCertificate = certificatemanager.Certificate{
	DomainName:       Sub{String: "*.${HostedZoneDomain}"},
	ValidationMethod: "DNS",
	DomainValidationOptions: []any{
		certificatemanager.Certificate_DomainValidationOption{
			DomainName:   Sub{String: "*.${HostedZoneDomain}"},
			HostedZoneId: HostedZoneId,
		},
	},
}

var FrontendApp = amplify.App{
	Name:        Sub{String: "${AWS::StackName}-frontend"},
	Description: "Static hosting for the file PDF frontend",
	EnvironmentVariables: []any{
		amplify.App_EnvironmentVariable{
			Name:  "USER_POOL_ID",
			Value: UserPool,
		},
		amplify.App_EnvironmentVariable{
			Name:  "USER_POOL_CLIENT_ID",
			Value: UserPoolClient,
		},
		amplify.App_EnvironmentVariable{
			Name:  "IDENTITY_POOL_ID",
			Value: IdentityPool,
		},
		amplify.App_EnvironmentVariable{
			Name:  "SERVER_URL",
			Value: Sub{String: "https://${ApiDomainName}/"},
		},
	},
}

var FrontendBranch = amplify.Branch{
	AppId:      FrontendApp.AppId,
	BranchName: "main",
	Stage:      "PRODUCTION",
}

var FrontendDomain = amplify.Domain{
	AppId:      FrontendApp.AppId,
	DomainName: HostedZoneDomain,
	SubDomainSettings: []any{
		amplify.Domain_SubDomainSetting{
			Prefix:     "www",
			BranchName: "main",
		},
	},
}
