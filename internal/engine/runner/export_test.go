package runner

import "github.com/featvet/featvet/internal/core/domain"

// GetCheckStatusMap returns a copy of the internal status map.
// This is exported for testing purposes only.
func (r *Runner) GetCheckStatusMap() map[string]domain.CheckStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statusMap := make(map[string]domain.CheckStatus, len(r.status))
	for k, v := range r.status {
		statusMap[k] = v
	}
	return statusMap
}
