package person

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	p, err := New("Taro Tanaka", 25)
	require.NoError(t, err)

	assert.Equal(t, "Taro Tanaka", p.Name())
	assert.Equal(t, 25, p.Age())
}

func TestNew_TrimsName(t *testing.T) {
	p, err := New("  Hanako Sato\t", 30)
	require.NoError(t, err)

	assert.Equal(t, "Hanako Sato", p.Name())
}

func TestNew_ZeroAge(t *testing.T) {
	p, err := New("Newborn", 0)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Age())
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		argName string
		argAge  int
		wantErr error
	}{
		{"empty name", "", 25, ErrEmptyName},
		{"whitespace name", "   \t\n", 25, ErrEmptyName},
		{"negative age", "Taro Tanaka", -1, ErrNegativeAge},
		{"both invalid reports name first", "", -5, ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.argName, tt.argAge)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.wantErr)
			// Errors identify the failing operation and its arguments.
			assert.Contains(t, err.Error(), "new person")
			assert.Contains(t, err.Error(), fmt.Sprintf("%q", tt.argName))
		})
	}
}

func TestGreet_ContainsNameAndAge(t *testing.T) {
	p, err := New("Taro Tanaka", 25)
	require.NoError(t, err)

	greeting := p.Greet()
	assert.Contains(t, greeting, "Taro Tanaka")
	assert.Contains(t, greeting, strconv.Itoa(25))
}

func TestIncrementAge(t *testing.T) {
	p, err := New("Taro Tanaka", 25)
	require.NoError(t, err)

	got := p.IncrementAge()
	assert.Equal(t, 26, got)
	assert.Equal(t, 26, p.Age())

	got = p.IncrementAge()
	assert.Equal(t, 27, got)
}

func TestSetAge(t *testing.T) {
	p, err := New("Taro Tanaka", 25)
	require.NoError(t, err)

	require.NoError(t, p.SetAge(40))
	assert.Equal(t, 40, p.Age())
}

func TestSetAge_NegativeLeavesStateUnchanged(t *testing.T) {
	p, err := New("Taro Tanaka", 25)
	require.NoError(t, err)

	err = p.SetAge(-3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeAge)
	assert.Equal(t, 25, p.Age())
}

func TestString(t *testing.T) {
	p, err := New("Taro Tanaka", 25)
	require.NoError(t, err)

	assert.Equal(t, `Person(name="Taro Tanaka", age=25)`, p.String())
}
