// internal/domain/models/visionmission.go
package models

// Vision/mission item types. The backend enforces the enum; these constants
// exist so handlers and templates never spell the strings inline.
const (
	VMTypeMission = "mission"
	VMTypeVision  = "vision"
	VMTypeGoal    = "goal"
	VMTypeValues  = "values"
)

// VMTypes lists the valid item types in display order.
var VMTypes = []string{VMTypeMission, VMTypeVision, VMTypeGoal, VMTypeValues}

// IsValidVMType reports whether t is one of the vision/mission item types.
func IsValidVMType(t string) bool {
	for _, v := range VMTypes {
		if v == t {
			return true
		}
	}
	return false
}

// VisionMissionItem is a typed card on the vision & mission page.
type VisionMissionItem struct {
	Record

	Type        string `json:"type"` // mission|vision|goal|values
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	UseUpload   bool   `json:"useUpload"`

	ComputedImageURL string `json:"-"`
}
