package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskzilla/taskzilla-cli/internal/apierr"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"plain error", errors.New("boom"), GeneralError},
		{"network", apierr.NewNetwork(errors.New("refused")), NetworkError},
		{"auth", apierr.FromStatus(401, "", nil), AuthError},
		{"permission", apierr.FromStatus(403, "", nil), PermissionError},
		{"not found", apierr.FromStatus(404, "", nil), NotFoundError},
		{"validation", apierr.FromStatus(422, "", nil), ValidationError},
		{"server", apierr.FromStatus(500, "", nil), ServerError},
		{"unknown status", apierr.FromStatus(418, "", nil), GeneralError},
		{"wrapped", fmt.Errorf("list teams: %w", apierr.FromStatus(401, "", nil)), AuthError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineExitCode(tt.err))
		})
	}
}
