// Package resources holds the API resource transformers.
package resources

import (
	"github.com/shashiranjanraj/stockwise/pkg/resource"
)

// ActivityLogResource shapes one synthetic activity-feed entry.
type ActivityLogResource struct{ resource.Base }

func (r *ActivityLogResource) ToArray(v interface{}) resource.Map {
	log, _ := v.(map[string]interface{})
	return resource.Map{
		"action":     log["action"],
		"details":    log["details"],
		"created_at": log["created_at"],
		"user_name":  log["user_name"],
	}
}
