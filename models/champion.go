package models

type Champion struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Titles int    `json:"titles"`
}
