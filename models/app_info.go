package models

// AppInfo describes what a running catalog server offers.
type AppInfo struct {
	Version       string   `json:"version"`
	DefaultFormat string   `json:"default_format"`
	Formats       []string `json:"formats"`
	Plans         int      `json:"plans"`
}
