// Cognito user pool, client and identity pool. The user pool owns sign-up,
// sign-in and email verification; the API authorizer and the Amplify app
// both reference it.
package infra

import (
	. "github.com/lex00/wetwire-aws-go/intrinsics"
	"github.com/lex00/wetwire-aws-go/resources/cognito"
)

// UserPool verifies users by email; email doubles as the sign-in alias.
var UserPool = cognito.UserPool{
	UserPoolName:           Sub{String: "${AWS::StackName}-users"},
	AutoVerifiedAttributes: []any{"email"},
	UsernameAttributes:     []any{"email"},
	// Self sign-up stays enabled.
	AdminCreateUserConfig: cognito.UserPool_AdminCreateUserConfig{
		AllowAdminCreateUserOnly: false,
	},
}

// UserPoolClient is the browser client. No secret: the SPA cannot keep one.
var UserPoolClient = cognito.UserPoolClient{
	ClientName:     Sub{String: "${AWS::StackName}-web-client"},
	UserPoolId:     UserPool,
	GenerateSecret: false,
}

// IdentityPool federates the user pool; unauthenticated identities are
// allowed for the public parts of the frontend.
var IdentityPool = cognito.IdentityPool{
	IdentityPoolName:               Sub{String: "${AWS::StackName}-identities"},
	AllowUnauthenticatedIdentities: true,
	CognitoIdentityProviders: []any{
		cognito.IdentityPool_CognitoIdentityProvider{
			ClientId:     UserPoolClient,
			ProviderName: UserPool.ProviderName,
		},
	},
}
