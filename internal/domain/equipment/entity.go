package equipment

import (
	"time"

	"staffing-engine/internal/domain/skill"

	"github.com/google/uuid"
)

type Equipment struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// SkillRequirement gates who may operate a piece of equipment (or fill a
// role). IsRequired distinguishes a hard gate from a soft preference; the
// qualification test itself is identical for both.
type SkillRequirement struct {
	ID                 uuid.UUID
	EquipmentID        uuid.UUID
	SkillID            uuid.UUID
	SkillName          string
	MinimumProficiency skill.ProficiencyLevel
	IsRequired         bool
	Notes              string
}
