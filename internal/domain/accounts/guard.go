package accounts

// Decision es el resultado tipado de un guard de autorización.
// Los handlers deciden qué hacer con el rechazo (flash + redirect).
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Reason: reason} }

// RequireSession exige solamente usuario autenticado.
func RequireSession(u User, authenticated bool) Decision {
	if !authenticated {
		return deny("You must be logged in.")
	}
	return allow()
}

// RequireClientWrite aplica la regla de crear/borrar clientes:
// sesión + permiso asignado + NO pertenecer al grupo Employee.
// La exclusión de Employee es intencional.
func RequireClientWrite(u User, authenticated bool, perm string) Decision {
	if !authenticated {
		return deny("You must be logged in.")
	}
	if !u.HasPermission(perm) {
		return deny("You do not have permission to perform this action.")
	}
	if u.InGroup(GroupEmployee) {
		return deny("You do not have permission to perform this action.")
	}
	return allow()
}
