package input

// Router decides which registered list owns keyboard events. At most one
// list holds local focus at a time; granting it to one list revokes it
// from whichever list held it before. When no list holds local focus,
// keys fall through to the primary list.
type Router struct {
	lists   []string
	primary string
	focused string
}

func NewRouter() *Router {
	return &Router{}
}

// Register adds a list under the given id. The first registered list
// becomes the primary target for global keys.
func (r *Router) Register(id string) {
	if id == "" {
		return
	}
	for _, existing := range r.lists {
		if existing == id {
			return
		}
	}
	r.lists = append(r.lists, id)
	if r.primary == "" {
		r.primary = id
	}
}

// Unregister removes a list. Local focus held by the removed list is
// dropped rather than transferred.
func (r *Router) Unregister(id string) {
	for i, existing := range r.lists {
		if existing == id {
			r.lists = append(r.lists[:i], r.lists[i+1:]...)
			break
		}
	}
	if r.focused == id {
		r.focused = ""
	}
	if r.primary == id {
		r.primary = ""
		if len(r.lists) > 0 {
			r.primary = r.lists[0]
		}
	}
}

// SetLocalFocus grants local focus to the given list, superseding any
// previous holder. Unknown ids are ignored.
func (r *Router) SetLocalFocus(id string) {
	for _, existing := range r.lists {
		if existing == id {
			r.focused = id
			return
		}
	}
}

// ClearLocalFocus revokes local focus without picking a successor.
func (r *Router) ClearLocalFocus() {
	r.focused = ""
}

// LocalFocus returns the id of the list holding local focus, or "".
func (r *Router) LocalFocus() string {
	return r.focused
}

// Target returns the list that should receive the next keyboard event:
// the locally focused list if there is one, otherwise the primary list.
func (r *Router) Target() string {
	if r.focused != "" {
		return r.focused
	}
	return r.primary
}
