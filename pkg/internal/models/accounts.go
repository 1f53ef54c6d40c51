package models

// Account is the viewer identity resolved by the authentication collaborator.
// Chronicle never stores accounts, it only treats the ID as an opaque
// comparable token attached to each request.
type Account struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Nick string `json:"nick"`
}
