package entity

// Patch is a partial-update body. A key that is absent means "leave the
// field unchanged"; a key set to nil marshals as explicit JSON null and
// means "clear the field". Updates must preserve that distinction so
// untouched fields are never silently erased server-side.
type Patch map[string]any

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return len(p) == 0
}

// Opt is an optional update field: unset, set to a value, or set to null.
type Opt[T any] struct {
	present bool
	null    bool
	value   T
}

// Set returns an Opt carrying the given value.
func Set[T any](v T) Opt[T] {
	return Opt[T]{present: true, value: v}
}

// Null returns an Opt that clears the field (explicit JSON null).
func Null[T any]() Opt[T] {
	return Opt[T]{present: true, null: true}
}

// IsSet reports whether the field was touched at all.
func (o Opt[T]) IsSet() bool { return o.present }

// IsNull reports whether the field is being cleared.
func (o Opt[T]) IsNull() bool { return o.present && o.null }

// Value returns the carried value and whether one is present (set, not null).
func (o Opt[T]) Value() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

func (o Opt[T]) put(p Patch, key string) {
	if !o.present {
		return
	}
	if o.null {
		p[key] = nil
		return
	}
	p[key] = o.value
}

// Update field sets, one per entity. Only the fields the dashboard's edit
// forms expose are updatable; clearable fields accept Null.

type BookUpdate struct {
	Title       Opt[string]
	PublisherID Opt[int64]
}

func (u BookUpdate) Patch() Patch {
	p := Patch{}
	u.Title.put(p, "title")
	u.PublisherID.put(p, "publisher_id")
	return p
}

type PublisherUpdate struct {
	Name        Opt[string]
	Email       Opt[string]
	PhoneNumber Opt[string]
	Website     Opt[string]
}

func (u PublisherUpdate) Patch() Patch {
	p := Patch{}
	u.Name.put(p, "name")
	u.Email.put(p, "email")
	u.PhoneNumber.put(p, "phone_number")
	u.Website.put(p, "website")
	return p
}

type AuthorUpdate struct {
	Name      Opt[string]
	Biography Opt[string]
	BirthDate Opt[string]
}

func (u AuthorUpdate) Patch() Patch {
	p := Patch{}
	u.Name.put(p, "name")
	u.Biography.put(p, "biography")
	u.BirthDate.put(p, "birth_date")
	return p
}

type ReviewUpdate struct {
	Rating     Opt[int]
	ReviewText Opt[string]
}

func (u ReviewUpdate) Patch() Patch {
	p := Patch{}
	u.Rating.put(p, "rating")
	u.ReviewText.put(p, "review_text")
	return p
}
