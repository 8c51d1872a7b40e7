package check_out

import (
	"fmt"
	"strings"
)

func validateRequest(req *Request) error {
	if req == nil || strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}
	return nil
}
