package catalog

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/uonenet-appchain/inter"
)

func TestLoadStaging(t *testing.T) {
	require := require.New(t)

	c, err := Load(Staging)
	require.NoError(err)
	require.Equal(Staging, c.Tier)
	require.Equal("5FbjQgSg97nvPsfuf21D886B26mwtNvZTgEfGfWR6gdNy3Tx", c.Sudo.String())
	require.Equal([]inter.Account{c.Sudo}, c.Endowed)
	require.Len(c.Authorities, 2)

	first := c.Authorities[0]
	require.NoError(first.Validate())
	require.Equal("0xd2374ae2756d053da9f4c8f5ed36fd381326b3b73986a1a0cd6fcc19254b3924", first.Stash.Hex())
	require.Equal("0xe6778539813675cb74a29d82d68ec7d9626430cf5818bc75da3af738c8a48666", first.Controller.Hex())
	require.Equal(first.Controller.Hex(), first.Babe.Hex())
	require.Equal("0xf8c6bff47eec7c2fe49be0b0d6c638757ff19562ea9ae1a76ed63d22f979b79c", first.Grandpa.Hex())
	require.Equal("0x02e23d37735cebc72732f31c86cca3a70f2c5d3087854ac94fe5aa1fec1bbb0e18", first.Beefy.Hex())

	second := c.Authorities[1]
	require.NoError(second.Validate())
	require.Equal("0x162a24df69ad68f581a49b1374f8ec6bca2f9ab93f1d59495f4d76e72fbbdf1a", second.Stash.Hex())
	require.Equal("0x036ce9ccdf3a1a4a6f5e65c44cd2453640ba4cee5a148e6362baa5d2129aed94fb", second.Beefy.Hex())
}

func TestLoadDevelopment(t *testing.T) {
	require := require.New(t)

	c := MustLoad(Development)
	require.Equal(Development, c.Tier)
	require.Len(c.Authorities, 1)
	require.Len(c.Endowed, 1)

	a := c.Authorities[0]
	require.NoError(a.Validate())
	require.Equal("0x143d6dbd1fa1906ef35a1308afd7940cf8e987271d47a8c196062eca1ef87a5b", a.Stash.Hex())
	require.Equal("0xdfb839beaf6fe750ca87b9059161d43f2682a6c3a0ac765f1e5054063ed9903b", a.Grandpa.Hex())
	require.Equal("0x02d337069cb73bcefafc4e35e5189ad62932e4f2ee3f985b6bbff654cb68017ff1", a.Beefy.Hex())
}

func TestLoadUnknownTier(t *testing.T) {
	_, err := Load(Tier("mainnet"))
	require.Error(t, err)
}

func TestLoadReturnsFreshValues(t *testing.T) {
	require := require.New(t)

	a := MustLoad(Staging)
	a.Authorities[0].Babe.Raw[0] ^= 0xff
	a.Endowed[0] = inter.Account{}

	b := MustLoad(Staging)
	require.NotEqual(a.Authorities[0].Babe, b.Authorities[0].Babe)
	require.False(b.Endowed[0].IsZero())
}

func TestParseReportsEveryOffendingEntry(t *testing.T) {
	require := require.New(t)

	data := []byte(`
tier = "staging"
sudo = "0x1234"
endowed = ["0xzz"]

[[authorities]]
stash = "0xd2374ae2756d053da9f4c8f5ed36fd381326b3b73986a1a0cd6fcc19254b3924"
controller = "0xe6778539813675cb74a29d82d68ec7d9626430cf5818bc75da3af738c8a48666"
babe = "0xe6778539813675cb74a29d82d68ec7d9626430cf5818bc75da3af738c8a48666"
grandpa = "0xf8c6"
im_online = "0xe6778539813675cb74a29d82d68ec7d9626430cf5818bc75da3af738c8a48666"
beefy = "0x04e23d37735cebc72732f31c86cca3a70f2c5d3087854ac94fe5aa1fec1bbb0e18"
octopus = "0xe6778539813675cb74a29d82d68ec7d9626430cf5818bc75da3af738c8a48666"
`)
	_, err := Parse(data)
	require.Error(err)
	require.True(errors.Is(err, ErrInvalidStaticConstant))

	var merr *multierror.Error
	require.True(errors.As(err, &merr))
	// sudo, endowed[0], grandpa, beefy
	require.Len(merr.Errors, 4)
	require.Contains(err.Error(), "authorities[0].grandpa")
	require.Contains(err.Error(), "authorities[0].beefy")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`
tier = "development"
sudo = "0x9c5e883c0a7795c81d354aa2d596364e71f4bb07d047c8dcb67547fbe1114f12"
surprise = 1
`))
	require.ErrorIs(t, err, ErrInvalidStaticConstant)
	require.Contains(t, err.Error(), "surprise")
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte(`tier = `))
	require.ErrorIs(t, err, ErrInvalidStaticConstant)
}
