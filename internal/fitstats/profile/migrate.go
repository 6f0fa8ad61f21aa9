package profile

// SchemaVersion is the current profile document version. Stored profiles
// carry the version they were last written with, and Migrate upgrades
// them in memory before use.
const SchemaVersion = 2

// migrations upgrades a profile from the keyed version to the next one.
var migrations = map[int]func(p *Profile){
	// v1 profiles predate per-exercise lifetime/xpPerRep/unit
	// and the profile-level totalXP field.
	1: backfillLegacyFields,
}

// Migrate upgrades a stored profile to the current schema version and
// reports whether anything changed. Unknown future versions are left alone.
func Migrate(p *Profile) bool {
	if p.SchemaVersion >= SchemaVersion {
		return false
	}
	version := p.SchemaVersion
	if version <= 0 {
		version = 1
	}
	for ; version < SchemaVersion; version++ {
		migrate, ok := migrations[version]
		if !ok {
			continue
		}
		migrate(p)
	}
	p.SchemaVersion = SchemaVersion
	return true
}

func backfillLegacyFields(p *Profile) {
	for i := range p.Exercises {
		e := &p.Exercises[i]
		if e.Lifetime == 0 {
			e.Lifetime = e.Count
		}
		if e.XPPerRep == 0 {
			e.XPPerRep = DefaultXPPerRep
		}
		if e.Unit == "" {
			e.Unit = DefaultUnit
		}
	}
	if p.TotalXP == 0 {
		p.TotalXP = float64(p.TotalLifetimeCount)
	}
	if p.Settings.Times == nil {
		p.Settings = DefaultSettings()
	}
}
