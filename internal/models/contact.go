package models

import "time"

// ContactStatusNew is the lifecycle status assigned to fresh submissions.
// Status transitions belong to the (future) admin workflow, not this API.
const ContactStatusNew = "new"

// ContactSubmission is a contact form submission document.
// ID and CreatedAt are set once at creation and never change.
type ContactSubmission struct {
	ID        string    `json:"id"         bson:"id"`
	Name      string    `json:"name"       bson:"name"`
	Email     string    `json:"email"      bson:"email"`
	Phone     *string   `json:"phone"      bson:"phone,omitempty"`
	Subject   string    `json:"subject"    bson:"subject"`
	Message   string    `json:"message"    bson:"message"`
	Status    string    `json:"status"     bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
