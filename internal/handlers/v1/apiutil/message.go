package apiutil

// MessageBody is the acknowledgement returned by delete endpoints.
type MessageBody struct {
	Message string `json:"message" doc:"Outcome of the request"`
}
