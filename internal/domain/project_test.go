package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectForm_ValidateCreate_RequiresName(t *testing.T) {
	assert.Error(t, ProjectForm{}.ValidateCreate())
	assert.Error(t, ProjectForm{Name: Ptr("")}.ValidateCreate())
	assert.NoError(t, ProjectForm{Name: Ptr("Alpha")}.ValidateCreate())
}

func TestProjectForm_ValidateUpdate_AllowsOmittedName(t *testing.T) {
	// A partial update may change status without touching the name.
	form := ProjectForm{Status: Ptr(ProjectOnHold)}
	assert.NoError(t, form.ValidateUpdate())

	// But an explicitly empty name is still rejected.
	form = ProjectForm{Name: Ptr("")}
	assert.Error(t, form.ValidateUpdate())
}

func TestProjectForm_Validate_Dates(t *testing.T) {
	tests := []struct {
		name    string
		form    ProjectForm
		wantErr bool
	}{
		{"valid dates", ProjectForm{Name: Ptr("p"), StartDate: Ptr("2026-01-01"), EndDate: Ptr("2026-06-30")}, false},
		{"blank date allowed", ProjectForm{Name: Ptr("p"), StartDate: Ptr("")}, false},
		{"bad start", ProjectForm{Name: Ptr("p"), StartDate: Ptr("Jan 1")}, true},
		{"bad end", ProjectForm{Name: Ptr("p"), EndDate: Ptr("2026-13-01")}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.ValidateCreate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProjectForm_Validate_Status(t *testing.T) {
	assert.Error(t, ProjectForm{Name: Ptr("p"), Status: Ptr(ProjectStatus("paused"))}.ValidateCreate())
	assert.NoError(t, ProjectForm{Name: Ptr("p"), Status: Ptr(ProjectOnHold)}.ValidateCreate())
}
