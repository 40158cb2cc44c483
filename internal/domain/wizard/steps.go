package wizard

import "github.com/dalemusser/paperhub/internal/domain/taxonomy"

// Wizard step numbers. The final step (details and submit) follows the last
// selection step and is checked by Validate rather than CanAdvance.
const (
	StepResourceType = 1
	StepCategory     = 2
	StepContentType  = 3
	StepProvince     = 4
	StepClass        = 5
)

// TotalSteps returns how many steps the wizard shows for a category.
func TotalSteps(category string) int {
	switch category {
	case taxonomy.CategoryGeneral:
		return 4
	case taxonomy.CategoryCambridge, taxonomy.CategoryCompetitionExam:
		return 5
	}
	if !taxonomy.HasProvinceStep(category) {
		return 5
	}
	return 6
}

// CanAdvance reports whether the user may leave step with the given
// selection. Steps outside 1..5 never advance.
func CanAdvance(step int, sel Selection) bool {
	switch step {
	case StepResourceType:
		return sel.ResourceType != ""
	case StepCategory:
		return sel.MainCategory != ""
	case StepContentType:
		return sel.ContentType != ""
	case StepProvince:
		if len(taxonomy.ListProvinces(sel.MainCategory, sel.ClassLevel)) == 0 {
			return true
		}
		return sel.Province != ""
	case StepClass:
		return sel.ClassLevel != ""
	}
	return false
}
