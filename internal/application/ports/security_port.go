package ports

// PasswordHasher define el puerto de hash de contraseñas (bcrypt en infraestructura).
// El hash es de una sola vía: el texto plano nunca se persiste.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// TokenGenerator genera tokens aleatorios para activación. La implementación debe usar
// una fuente criptográficamente segura.
type TokenGenerator interface {
	Alphanumeric(n int) (string, error)
}
