package model

import (
	"gorm.io/gorm"
)

// 群组隐私级别
// secret 入群规则与 private 相同，但不出现在推荐/搜索/附近结果里
const (
	PrivacyPublic  int8 = 0
	PrivacyPrivate int8 = 1
	PrivacySecret  int8 = 2
)

// GroupInfo 群组信息
// Version 是乐观锁版本号，群组范围内的成员变更都要 CAS 该列
type GroupInfo struct {
	gorm.Model
	Uuid        string  `gorm:"column:uuid;uniqueIndex;type:char(21);not null;comment:群组唯一id"`
	Name        string  `gorm:"column:name;type:varchar(50);not null;comment:群名称"`
	Description string  `gorm:"column:description;type:varchar(500);comment:群描述"`
	Dp          string  `gorm:"column:dp;type:varchar(255);comment:群展示图"`
	OwnerId     string  `gorm:"column:owner_id;type:char(21);not null;comment:群主uuid"`
	Privacy     int8    `gorm:"column:privacy;default:0;comment:隐私，0.公开，1.私密，2.隐秘"`
	Tags        string  `gorm:"column:tags;type:varchar(255);comment:标签，逗号分隔"`
	City        string  `gorm:"column:city;type:varchar(50);comment:城市"`
	Latitude    float64 `gorm:"column:latitude;comment:纬度"`
	Longitude   float64 `gorm:"column:longitude;comment:经度"`
	Capacity    int     `gorm:"column:capacity;default:0;comment:人数上限，0为不限"`
	PinnedPost  string  `gorm:"column:pinned_post;type:varchar(500);comment:置顶内容"`
	Version     int64   `gorm:"column:version;default:0;not null;comment:乐观锁版本号"`
}

func (GroupInfo) TableName() string {
	return "group_info"
}
