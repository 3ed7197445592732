package substitutions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brianjpetersen/when/substitutions"
)

func TestSubstitutor_Apply(t *testing.T) {
	t.Run(`every token occurrence is replaced in one pass`, func(t *testing.T) {
		substitutor := substitutions.New([]substitutions.Substitution{
			{Token: `foo`, Value: `bar`},
			{Token: `bar`, Value: `foo`},
			{Token: `and`, Value: `or`},
		})
		require.Equal(t, `bar is foo, or foo is bar`, substitutor.Apply(`foo is bar, and bar is foo`))
	})

	t.Run(`unrecognized text is copied through verbatim`, func(t *testing.T) {
		substitutor := substitutions.New([]substitutions.Substitution{{Token: `13`, Value: `05`}})
		require.Equal(t, `exactly 05 o'clock`, substitutor.Apply(`exactly 13 o'clock`))
	})

	t.Run(`a token listed earlier wins at the same position`, func(t *testing.T) {
		substitutor := substitutions.New([]substitutions.Substitution{
			{Token: `1776`, Value: `2015`},
			{Token: `17`, Value: `XX`},
		})
		require.Equal(t, `2015`, substitutor.Apply(`1776`))
	})

	t.Run(`a token starting earlier wins regardless of order`, func(t *testing.T) {
		substitutor := substitutions.New([]substitutions.Substitution{
			{Token: `76`, Value: `15`},
			{Token: `17`, Value: `XX`},
		})
		// `17` opens the numeral one rune earlier, so `76` never gets a chance
		require.Equal(t, `XX6`, substitutor.Apply(`176`))
	})

	t.Run(`the first definition of a repeated token wins`, func(t *testing.T) {
		substitutor := substitutions.New([]substitutions.Substitution{
			{Token: `7`, Value: `4`},
			{Token: `7`, Value: `9`},
		})
		require.Equal(t, `4`, substitutor.Apply(`7`))
	})

	t.Run(`an empty table leaves the string untouched`, func(t *testing.T) {
		require.Equal(t, `1776`, substitutions.New(nil).Apply(`1776`))
	})

	t.Run(`tokens with regexp metacharacters stay literal`, func(t *testing.T) {
		substitutor := substitutions.New([]substitutions.Substitution{{Token: `P.M.`, Value: `A.M.`}})
		require.Equal(t, `A.M. and PXMY`, substitutor.Apply(`P.M. and PXMY`))
	})
}

func TestInString(t *testing.T) {
	result := substitutions.InString(`foo is bar`, []substitutions.Substitution{
		{Token: `foo`, Value: `bar`},
		{Token: `bar`, Value: `foo`},
	})
	require.Equal(t, `bar is foo`, result)
}
