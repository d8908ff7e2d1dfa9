package models

// FilePdf is one record in the files table.
//
// The table is keyed by (userId, createdAt); filePdfId is the partition key
// of the filePdfId-index global secondary index and is the record's stable
// external identifier. createdAt is milliseconds since epoch serialized as a
// string, which keeps the sort key string-sortable in creation order.
//
// The persisted attribute casing (including filePDFName) predates this
// service and is kept for compatibility with existing items.
type FilePdf struct {
	UserID      string `json:"userId" dynamodbav:"userId"`
	CreatedAt   string `json:"createdAt" dynamodbav:"createdAt"`
	FilePdfID   string `json:"filePdfId" dynamodbav:"filePdfId"`
	FilePdfName string `json:"filePDFName" dynamodbav:"filePDFName"`
	Completed   bool   `json:"completed" dynamodbav:"completed"`
}

// FilePdfKey is the compound primary key of a FilePdf record. It is echoed
// back as the body of a successful delete.
type FilePdfKey struct {
	UserID    string `json:"userId" dynamodbav:"userId"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
}

// Key returns the record's primary key.
func (f FilePdf) Key() FilePdfKey {
	return FilePdfKey{UserID: f.UserID, CreatedAt: f.CreatedAt}
}
