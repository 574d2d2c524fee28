package domain

var (
	MessageSuccessSubscribe = "subscribed successfully"

	MessageFailedSubscribe = "failed to subscribe"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
