package models

// CreateFilePdfRequest is the JSON body of POST /filepdfs.
type CreateFilePdfRequest struct {
	FilePdfName string `json:"filePdfName"`
}

// ErrorResponse is returned for any failed API request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
