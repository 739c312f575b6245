package scripting

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// DamageHook is the Lua global a damage script must define.
const DamageHook = "damage_per_hit"

// ErrHookMissing is returned when a damage script does not define DamageHook.
var ErrHookMissing = errors.New("scripting: damage_per_hit is not defined")

// DamageInputs are the values passed to damage_per_hit, in argument order.
type DamageInputs struct {
	Class       string
	Level       int
	Strength    int
	Dexterity   int
	WeaponBonus int
}

// DamageFormula evaluates an operator-supplied damage_per_hit function.
//
// DamageFormula is safe for concurrent use; calls are serialized on one VM.
type DamageFormula struct {
	mu     sync.Mutex
	L      *lua.LState
	cancel func()
	limit  int
	path   string
	logger *zap.Logger
}

// LoadDamageFormula runs the script at path in a fresh sandbox and checks that
// it defines damage_per_hit.
//
// Precondition: path must name a readable Lua file.
// Postcondition: Returns a ready DamageFormula, or an error on load failure or
// a missing hook. The caller must Close the formula.
func LoadDamageFormula(path string, instLimit int, logger *zap.Logger) (*DamageFormula, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	L, cancel := NewSandboxedState(instLimit)
	if err := L.DoFile(path); err != nil {
		cancel()
		L.Close()
		return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
	}
	if L.GetGlobal(DamageHook).Type() != lua.LTFunction {
		cancel()
		L.Close()
		return nil, fmt.Errorf("%w in %q", ErrHookMissing, path)
	}
	logger.Info("damage script loaded", zap.String("path", path))
	return &DamageFormula{L: L, cancel: cancel, limit: normalizeLimit(instLimit), path: path, logger: logger}, nil
}

// DamagePerHit calls damage_per_hit(class, level, strength, dexterity, weapon_bonus).
//
// Each call gets a fresh instruction budget.
// Postcondition: Returns the script's result truncated to an int, or an error
// if the script fails, exceeds its budget, or returns a non-number.
func (f *DamageFormula) DamagePerHit(in DamageInputs) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cancel()
	ctx, cancel := newCountingContext(f.limit)
	f.cancel = cancel
	f.L.SetContext(ctx)

	err := f.L.CallByParam(lua.P{
		Fn:      f.L.GetGlobal(DamageHook),
		NRet:    1,
		Protect: true,
	},
		lua.LString(in.Class),
		lua.LNumber(in.Level),
		lua.LNumber(in.Strength),
		lua.LNumber(in.Dexterity),
		lua.LNumber(in.WeaponBonus),
	)
	if err != nil {
		f.logger.Warn("scripting: Lua runtime error",
			zap.String("path", f.path),
			zap.String("hook", DamageHook),
			zap.Error(err),
		)
		return 0, fmt.Errorf("scripting: calling %s: %w", DamageHook, err)
	}

	ret := f.L.Get(-1)
	f.L.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("scripting: %s returned %s, want number", DamageHook, ret.Type())
	}
	return int(n), nil
}

// Close releases the VM.
func (f *DamageFormula) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancel()
	f.L.Close()
}
