package entity

type Banner struct {
	Base

	URL       string
	MobileURL string
	FileName  string
}
