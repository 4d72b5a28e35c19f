package timetable

// DescriptorBuilder fluently assembles a Descriptor. It is the only
// legitimate constructor: Build rejects incomplete input with a
// BuildError rather than returning a half-specified descriptor.
//
// Enabling a penalty kernel is implicit in which option was set:
// WithDuration always enables Validity; WithAllowedSlots enables
// AllowedSlots; WithPreferredSlots enables PreferredSlots; WithGap
// enables Gap. Callers never set the Penalties set directly.
type DescriptorBuilder struct {
	id             uint32
	idSet          bool
	name           string
	nameSet        bool
	priority       Priority
	prioritySet    bool
	duration       uint8
	durationSet    bool
	allowedSlots   []Slot
	preferredSlots []Slot
	gap            uint8
	gapSet         bool
}

// NewDescriptorBuilder returns an empty builder.
func NewDescriptorBuilder() *DescriptorBuilder {
	return &DescriptorBuilder{}
}

// WithID sets the descriptor's id. Use the same id across descriptors
// to denote repeated instances of one logical activity.
func (b *DescriptorBuilder) WithID(id uint32) *DescriptorBuilder {
	b.id = id
	b.idSet = true
	return b
}

// WithName sets the descriptor's human label.
func (b *DescriptorBuilder) WithName(name string) *DescriptorBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// WithPriority sets the descriptor's priority.
func (b *DescriptorBuilder) WithPriority(priority Priority) *DescriptorBuilder {
	b.priority = priority
	b.prioritySet = true
	return b
}

// WithDuration sets the descriptor's window count and implicitly
// enables the Validity kernel.
func (b *DescriptorBuilder) WithDuration(duration uint8) *DescriptorBuilder {
	b.duration = duration
	b.durationSet = true
	return b
}

// WithAllowedSlots sets the legal start-slot whitelist and implicitly
// enables the AllowedSlots kernel. The order given is preserved.
func (b *DescriptorBuilder) WithAllowedSlots(slots []Slot) *DescriptorBuilder {
	b.allowedSlots = append([]Slot(nil), slots...)
	return b
}

// WithPreferredSlots sets the preferred start-slot list and implicitly
// enables the PreferredSlots kernel. The order given is preserved.
func (b *DescriptorBuilder) WithPreferredSlots(slots []Slot) *DescriptorBuilder {
	b.preferredSlots = append([]Slot(nil), slots...)
	return b
}

// WithGap sets the minimum window-distance between sibling instances
// sharing an id and implicitly enables the Gap kernel.
func (b *DescriptorBuilder) WithGap(gap uint8) *DescriptorBuilder {
	b.gap = gap
	b.gapSet = true
	return b
}

// Build validates and produces the Descriptor, or a BuildError if
// id, name, priority, or duration is unset, duration is out of
// [1, MaxDuration], or no penalty kernel ends up enabled.
func (b *DescriptorBuilder) Build() (*Descriptor, error) {
	if !b.idSet || b.id == 0 {
		return nil, &BuildError{Reason: "id is required and must be nonzero"}
	}
	if !b.nameSet {
		return nil, &BuildError{Reason: "name is required"}
	}
	if !b.prioritySet {
		return nil, &BuildError{Reason: "priority is required"}
	}
	if !b.durationSet {
		return nil, &BuildError{Reason: "duration is required"}
	}
	if b.duration == 0 || b.duration > MaxDuration {
		return nil, &BuildError{Reason: "duration must be between 1 and 48"}
	}

	penalties := []PenaltyKind{Validity}
	if b.allowedSlots != nil {
		penalties = append(penalties, AllowedSlots)
	}
	if b.preferredSlots != nil {
		penalties = append(penalties, PreferredSlots)
	}
	if b.gapSet {
		penalties = append(penalties, Gap)
	}

	return &Descriptor{
		ID:             b.id,
		Name:           b.name,
		Duration:       b.duration,
		Priority:       b.priority,
		Penalties:      penalties,
		AllowedSlots:   b.allowedSlots,
		PreferredSlots: b.preferredSlots,
		Gap:            b.gap,
	}, nil
}
