package rdb

import "time"

// ProviderRecord is the RDB persistence model for domain Provider.
// Table name: providers
type ProviderRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	Name      string    `gorm:"type:text;not null"`
	Driver    string    `gorm:"type:text;not null"`
	Settings  string    `gorm:"type:text"` // JSON encoded map[string]string
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ProviderRecord) TableName() string { return "providers" }

// RunRecord is the RDB persistence model for domain ResolutionRun.
// Table name: runs
type RunRecord struct {
	ID                  string    `gorm:"primaryKey;type:text;not null"`
	Name                string    `gorm:"type:text;not null"`
	ProviderID          string    `gorm:"type:text;index"`
	Hostname            string    `gorm:"type:text;not null;index"`
	DNSProvider         string    `gorm:"type:text;not null"`
	Outcome             string    `gorm:"type:text;not null"`
	ZoneID              string    `gorm:"type:text"`
	CertificateARN      string    `gorm:"type:text"`
	LoadBalancerDNSName string    `gorm:"type:text"`
	Error               string    `gorm:"type:text"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

func (RunRecord) TableName() string { return "runs" }
