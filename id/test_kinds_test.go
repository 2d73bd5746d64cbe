package id_test

// Common test kind markers
type Player struct{}

func (Player) IdKind() string { return "Player" }

type Unit struct{}

func (Unit) IdKind() string { return "Unit" }

type Projectile struct{}

func (Projectile) IdKind() string { return "Projectile" }
