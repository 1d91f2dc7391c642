package engine

import (
	"errors"
	"fmt"
)

// Precondition violations, independent of the design-domain error types.
var (
	ErrNegativeMoment = errors.New("factored moment mu must be non-negative")
	ErrNegativeArea   = errors.New("provided reinforcement area must be non-negative")
)

// SectionCapacityError indicates the section cannot equilibrate the given
// demand: neutral axis outside the section, degenerate width or strength,
// axial load beyond the coarse axial bound, or demand beyond the
// ductility-governed maximum.
type SectionCapacityError struct {
	msg string
}

func (e *SectionCapacityError) Error() string {
	return e.msg
}

func capacityErrorf(format string, args ...any) *SectionCapacityError {
	return &SectionCapacityError{msg: fmt.Sprintf(format, args...)}
}

// DuctilityError indicates the provided reinforcement leaves the net tensile
// strain below the code minimum: the section is over-reinforced.
type DuctilityError struct {
	Et    float64 // computed net tensile strain
	EtMin float64 // minimum allowable net tensile strain
}

func (e *DuctilityError) Error() string {
	return fmt.Sprintf("ductility requirements not met: net tensile strain et=%.5f is below the minimum allowable et,min=%.5f (section is over-reinforced)",
		e.Et, e.EtMin)
}

// MinReinforcementError indicates the design strength falls below the
// 1.2*Mcr minimum flexural strength threshold.
type MinReinforcementError struct {
	PhiMn    float64 // design strength (N-mm)
	McrCheck float64 // 1.2*Mcr threshold (N-mm)
}

func (e *MinReinforcementError) Error() string {
	return fmt.Sprintf("minimum reinforcement requirements not met: phiMn=%.2f kNm is below 1.2*Mcr=%.2f kNm",
		e.PhiMn/1e6, e.McrCheck/1e6)
}

// NotImplementedError marks analysis features that are recognized but
// deliberately unimplemented, such as doubly-reinforced sections.
type NotImplementedError struct {
	msg string
}

func (e *NotImplementedError) Error() string {
	return e.msg
}
