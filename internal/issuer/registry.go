package issuer

import "cardstmt/internal"

type Registry struct {
	profiles []Profile
	fallback Profile
}

func NewRegistry() *Registry {
	return &Registry{
		profiles: []Profile{
			iciciProfile(),
			axisProfile(),
			idfcProfile(),
			rblProfile(),
			amexProfile(),
		},
		fallback: fallbackProfile(),
	}
}

func NewRegistryWith(profiles []Profile, fallback Profile) *Registry {
	return &Registry{profiles: profiles, fallback: fallback}
}

func (r *Registry) Profiles() []Profile {
	return r.profiles
}

func (r *Registry) Fallback() Profile {
	return r.fallback
}

func (r *Registry) ProfileFor(is internal.Issuer) Profile {
	for _, p := range r.profiles {
		if p.Issuer == is {
			return p
		}
	}
	return r.fallback
}
