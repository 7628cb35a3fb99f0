package appcontext

// Env is the surface the process was started for. It decides which fx modules are
// assembled.
type Env int

const (
	// EnvServer serves host events over HTTP.
	EnvServer Env = iota
	// EnvCLI runs a one-shot command against the same services, without the HTTP adapter.
	EnvCLI
)

func (e Env) String() string {
	switch e {
	case EnvServer:
		return "server"
	case EnvCLI:
		return "cli"
	default:
		return "unknown"
	}
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{Env: env}
}
