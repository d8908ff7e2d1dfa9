// DynamoDB table for FilePdf records.
package infra

import (
	"github.com/lex00/wetwire-aws-go/resources/dynamodb"
)

// FilePdfIndexName is the GSI used for reverse lookup by filePdfId during
// delete. The handler receives it through the INDEX_NAME env var.
const FilePdfIndexName = "filePdfId-index"

// FilePdfsTable is keyed by (userId, createdAt); createdAt is a
// string-serialized millisecond timestamp, so the sort order is creation
// order. On-demand billing: the workload is spiky and small.
var FilePdfsTable = dynamodb.Table{
	BillingMode: "PAY_PER_REQUEST",
	AttributeDefinitions: []any{
		dynamodb.Table_AttributeDefinition{
			AttributeName: "userId",
			AttributeType: "S",
		},
		dynamodb.Table_AttributeDefinition{
			AttributeName: "createdAt",
			AttributeType: "S",
		},
		dynamodb.Table_AttributeDefinition{
			AttributeName: "filePdfId",
			AttributeType: "S",
		},
	},
	KeySchema: []any{
		dynamodb.Table_KeySchema{
			AttributeName: "userId",
			KeyType:       "HASH",
		},
		dynamodb.Table_KeySchema{
			AttributeName: "createdAt",
			KeyType:       "RANGE",
		},
	},
	GlobalSecondaryIndexes: []any{
		dynamodb.Table_GlobalSecondaryIndex{
			IndexName: FilePdfIndexName,
			KeySchema: []any{
				dynamodb.Table_KeySchema{
					AttributeName: "filePdfId",
					KeyType:       "HASH",
				},
			},
			Projection: dynamodb.GlobalTable_Projection{
				ProjectionType: "ALL",
			},
		},
	},
}
