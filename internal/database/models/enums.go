package models

// EmploymentStatus defines the employment states of a team member
type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusOnLeave  EmploymentStatus = "on_leave"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)

// IsValid checks if the EmploymentStatus is valid
func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentStatusActive, EmploymentStatusOnLeave, EmploymentStatusInactive:
		return true
	}
	return false
}

// InductionStatus tracks a contractor's site induction progress
type InductionStatus string

const (
	InductionStatusNotStarted InductionStatus = "not_started"
	InductionStatusInProgress InductionStatus = "in_progress"
	InductionStatusCompleted  InductionStatus = "completed"
	InductionStatusExpired    InductionStatus = "expired"
)

// IsValid checks if the InductionStatus is valid
func (s InductionStatus) IsValid() bool {
	switch s {
	case InductionStatusNotStarted, InductionStatusInProgress, InductionStatusCompleted, InductionStatusExpired:
		return true
	}
	return false
}

// InspectionResult is the outcome of a vehicle inspection
type InspectionResult string

const (
	InspectionResultPass InspectionResult = "pass"
	InspectionResultFail InspectionResult = "fail"
)

// IsValid checks if the InspectionResult is valid
func (r InspectionResult) IsValid() bool {
	return r == InspectionResultPass || r == InspectionResultFail
}

// EquipmentCondition describes the serviceability of an equipment asset
type EquipmentCondition string

const (
	EquipmentConditionServiceable  EquipmentCondition = "serviceable"
	EquipmentConditionNeedsRepair  EquipmentCondition = "needs_repair"
	EquipmentConditionOutOfService EquipmentCondition = "out_of_service"
	EquipmentConditionAwaitingTest EquipmentCondition = "awaiting_test"
)

// IsValid checks if the EquipmentCondition is valid
func (c EquipmentCondition) IsValid() bool {
	switch c {
	case EquipmentConditionServiceable, EquipmentConditionNeedsRepair,
		EquipmentConditionOutOfService, EquipmentConditionAwaitingTest:
		return true
	}
	return false
}

// PermitStatus defines the lifecycle states of a work permit
type PermitStatus string

const (
	PermitStatusDraft   PermitStatus = "draft"
	PermitStatusActive  PermitStatus = "active"
	PermitStatusExpired PermitStatus = "expired"
	PermitStatusRevoked PermitStatus = "revoked"
)

// IsValid checks if the PermitStatus is valid
func (s PermitStatus) IsValid() bool {
	switch s {
	case PermitStatusDraft, PermitStatusActive, PermitStatusExpired, PermitStatusRevoked:
		return true
	}
	return false
}
