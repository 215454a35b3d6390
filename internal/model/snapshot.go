package model

import "time"

// A Snapshot records a directory snapshot document archived in storage.
type Snapshot struct {
	Base `json:",inline" storm:"inline"`

	Root     string    `json:"root"     storm:"index"`
	Key      string    `json:"key"      storm:"unique"`
	Size     int64     `json:"size"`
	Checksum string    `json:"checksum"`
	Files    int       `json:"files"`
	Dirs     int       `json:"dirs"`
	TTL      time.Time `json:"ttl"      storm:"index"`
}
