package product

import (
	"strings"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"
)

// Format is a data format a product can be delivered in. IsManual marks
// formats that extraction staff produce by hand rather than automatically.
type Format struct {
	id       kernel.UUID
	name     string
	isManual bool
}

func NewFormat(id kernel.UUID, name string, isManual bool) (Format, error) {
	if err := id.Validate(); err != nil {
		return Format{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Format{}, errs.NewValueIsRequiredError("format name")
	}
	return Format{id: id, name: name, isManual: isManual}, nil
}

func (f Format) ID() kernel.UUID {
	return f.id
}

func (f Format) Name() string {
	return f.name
}

func (f Format) IsManual() bool {
	return f.isManual
}
