package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"

	"github.com/hollowmoor/driftblade/player"
)

const consoleLines = 12

// Console is an in-game script prompt. Lines are evaluated as tengo with a
// handful of game bindings, so tuning experiments and repro setups do not
// need a recompile.
type Console struct {
	open    bool
	line    string
	history []string

	player    *player.Player
	cam       *Camera
	clipboard bool
}

func newConsole(p *player.Player, cam *Camera) *Console {
	c := &Console{player: p, cam: cam}
	if err := clipboard.Init(); err == nil {
		c.clipboard = true
	}
	c.log("type help() for bindings")
	return c
}

func (c *Console) Toggle() { c.open = !c.open }
func (c *Console) Open() bool {
	return c.open
}

// Update consumes typed characters while the console is open.
func (c *Console) Update() {
	if !c.open {
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r == '`' {
			continue
		}
		if r >= ' ' {
			c.line += string(r)
		}
	}
	if repeated(ebiten.KeyBackspace) && c.line != "" {
		rs := []rune(c.line)
		c.line = string(rs[:len(rs)-1])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && strings.TrimSpace(c.line) != "" {
		src := c.line
		c.line = ""
		c.log("> " + src)
		c.eval(src)
	}
}

func (c *Console) eval(src string) {
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap("math", "text", "fmt"))

	for name, fn := range c.bindings() {
		if err := script.Add(name, fn); err != nil {
			c.log(fmt.Sprintf("bind %s: %v", name, err))
			return
		}
	}

	if _, err := script.Run(); err != nil {
		c.log(fmt.Sprintf("error: %v", err))
	}
}

func (c *Console) bindings() map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"help": {Name: "help", Value: func(args ...tengo.Object) (tengo.Object, error) {
			c.log("print(v) state() pos() tp(x, y) buff(name, ms) shake(px, sec) copy()")
			return tengo.UndefinedValue, nil
		}},
		"print": {Name: "print", Value: func(args ...tengo.Object) (tengo.Object, error) {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = a.String()
			}
			c.log(strings.Join(parts, " "))
			return tengo.UndefinedValue, nil
		}},
		"state": {Name: "state", Value: func(args ...tengo.Object) (tengo.Object, error) {
			c.log(fmt.Sprintf("%s/%s ground=%v hp=%.0f mana=%.0f",
				c.player.State(), c.player.Context(), c.player.OnGround(),
				c.player.Health(), c.player.Mana()))
			return tengo.UndefinedValue, nil
		}},
		"pos": {Name: "pos", Value: func(args ...tengo.Object) (tengo.Object, error) {
			p := c.player.Position()
			c.log(fmt.Sprintf("%.1f, %.1f", p.X, p.Y))
			return tengo.UndefinedValue, nil
		}},
		"tp": {Name: "tp", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			x, ok1 := tengo.ToFloat64(args[0])
			y, ok2 := tengo.ToFloat64(args[1])
			if !ok1 || !ok2 {
				return nil, tengo.ErrInvalidArgumentType{Name: "x/y", Expected: "number"}
			}
			c.player.SetPosition(x, y)
			return tengo.UndefinedValue, nil
		}},
		"buff": {Name: "buff", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			name, ok1 := tengo.ToString(args[0])
			ms, ok2 := tengo.ToFloat64(args[1])
			if !ok1 || !ok2 {
				return nil, tengo.ErrInvalidArgumentType{Name: "name/ms", Expected: "string, number"}
			}
			kind, ok := player.BuffKindByName(name)
			if !ok {
				c.log("unknown buff " + name)
				return tengo.UndefinedValue, nil
			}
			c.player.AddBuff(kind, ms)
			return tengo.UndefinedValue, nil
		}},
		"shake": {Name: "shake", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			px, _ := tengo.ToFloat64(args[0])
			sec, _ := tengo.ToFloat64(args[1])
			c.cam.Shake(px, sec)
			return tengo.UndefinedValue, nil
		}},
		"copy": {Name: "copy", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if !c.clipboard {
				c.log("clipboard unavailable")
				return tengo.UndefinedValue, nil
			}
			clipboard.Write(clipboard.FmtText, []byte(strings.Join(c.history, "\n")))
			c.log("copied")
			return tengo.UndefinedValue, nil
		}},
	}
}

func (c *Console) log(line string) {
	c.history = append(c.history, line)
	if len(c.history) > consoleLines {
		c.history = c.history[len(c.history)-consoleLines:]
	}
}

func (c *Console) Draw(screen *ebiten.Image) {
	if !c.open {
		return
	}

	w := float32(screen.Bounds().Dx())
	h := float32(consoleLines+2) * 16
	vector.DrawFilledRect(screen, 0, 0, w, h, color.NRGBA{A: 210}, false)

	for i, line := range c.history {
		ebitenutil.DebugPrintAt(screen, line, 8, 4+i*16)
	}
	ebitenutil.DebugPrintAt(screen, "> "+c.line+"_", 8, 4+len(c.history)*16)
}

// repeated mimics key repeat for held editing keys.
func repeated(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 20 && d%4 == 0)
}
