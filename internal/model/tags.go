package model

import "strings"

// 标签在库里存逗号分隔字符串，这里统一做拆装

// SplitTags 逗号分隔字符串 -> 标签列表，忽略空项与首尾空白
func SplitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags 标签列表 -> 逗号分隔字符串
func JoinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return strings.Join(cleaned, ",")
}
