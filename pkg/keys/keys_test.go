package keys

import (
	"net"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitConcatDigits(t *testing.T) {
	testCases := []struct {
		key    int
		digits []int
	}{
		{124, []int{1, 2, 4}},
		{9821, []int{9, 8, 2, 1}},
		{7, []int{7}},
		{100, []int{1, 0, 0}},
		{0, []int{}},
		{-12, []int{-1, -2}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.digits, SplitDigits(tc.key), "split %d", tc.key)
		assert.Equal(t, tc.key, ConcatDigits(tc.digits), "concat %v", tc.digits)
	}
}

func TestDigitsParse(t *testing.T) {
	codec := Digits()

	n, err := codec.Parse(" 482 ")
	require.NoError(t, err)
	assert.Equal(t, 482, n)
	assert.Equal(t, "482", codec.Format(n))

	_, err = codec.Parse("48a")
	assert.Error(t, err)
}

func TestDotted(t *testing.T) {
	codec := Dotted("")
	assert.Equal(t, []string{"foo", "bar"}, codec.Split("foo.bar"))
	assert.Equal(t, []string{"foo"}, codec.Split("foo"))
	assert.Equal(t, "foo.bar.baz", codec.Concat([]string{"foo", "bar", "baz"}))

	slashes := Dotted("/")
	assert.Equal(t, []string{"", "usr", "bin"}, slashes.Split("/usr/bin"))
	assert.Equal(t, "/usr/bin", slashes.Concat(slashes.Split("/usr/bin")))
}

// TestDottedTrie verifies the dotted scenario end to end through a codec-built trie.
func TestDottedTrie(t *testing.T) {
	tr := Dotted(".").NewTrie()
	for _, key := range []string{"foo", "foo.bar", "mu", "mu.bar", "foo.baz"} {
		tr.Insert(key)
	}

	it := tr.Find("foo.baz")
	require.False(t, it.IsEnd())
	assert.Equal(t, "foo.baz", it.Value())
	assert.True(t, tr.Find("mu.baz").Equal(tr.End()))
}

// TestDigitsTrie verifies the 482/48 parent scenario through a codec-built trie.
func TestDigitsTrie(t *testing.T) {
	tr := Digits().NewTrie()
	tr.Insert(482)
	assert.True(t, tr.FindParent(tr.Find(482)).Equal(tr.End()))

	tr.Insert(48)
	parent := tr.FindParent(tr.Find(482))
	require.False(t, parent.IsEnd())
	assert.Equal(t, 48, parent.Value())
}

func TestParseCIDR(t *testing.T) {
	testCases := []struct {
		raw       string
		canonical string
	}{
		{"10.1.2.3/8", "10.0.0.0/8"},
		{"192.168.1.0/24", "192.168.1.0/24"},
		{" 2001:db8::ff00:42:8329/16 ", "2001::/16"},
		{"0.0.0.0/0", "0.0.0.0/0"},
	}
	for _, tc := range testCases {
		canonical, err := ParseCIDR(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.canonical, canonical)
	}

	_, err := ParseCIDR("10.0.0.0")
	assert.Error(t, err)
	_, err = ParseCIDR("300.0.0.0/8")
	assert.Error(t, err)
}

func TestCIDRToBitsConversion(t *testing.T) {
	testCases := []struct {
		cidr         string
		expectedBits []int
	}{
		{"1.1.1.1/8", []int{0, 0, 0, 0, 0, 0, 0, 1}},
		{"3.1.1.1/8", []int{0, 0, 0, 0, 0, 0, 1, 1}},
		{"2001:db8::ff00:42:8329/16", []int{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}},
		{"0.0.0.0/0", []int{}},
	}

	for _, tc := range testCases {
		_, cidr, err := net.ParseCIDR(tc.cidr)
		require.NoError(t, err)
		assert.Equal(t, tc.expectedBits, CIDRToBits(cidr), tc.cidr)
	}

	assert.Panics(t, func() {
		CIDRToBits(nil)
	})
}

func TestBitsToCIDRConversion(t *testing.T) {
	testCases := []struct {
		cidr   string
		isIPv6 bool
	}{
		{"1.1.1.1/8", false},
		{"192.168.1.0/24", false},
		{"192.168.2.0/23", false},
		{"10.0.0.1/32", false},
		{"2001:db8::ff00:42:8329/16", true},
		{"2001:db8::/32", true},
	}

	for _, tc := range testCases {
		_, cidr, err := net.ParseCIDR(tc.cidr)
		require.NoError(t, err)
		assert.Equal(t, cidr.String(), BitsToCIDR(CIDRToBits(cidr), tc.isIPv6).String())
	}
}

func TestSplitCIDR(t *testing.T) {
	assert.Equal(t, []string{V4, Zero, Zero, Zero, Zero, One, Zero, One, Zero}, SplitCIDR("10.0.0.0/8"))
	assert.Equal(t, []string{V4}, SplitCIDR("0.0.0.0/0"))
	assert.Equal(t, V6, SplitCIDR("2001:db8::/32")[0])
	assert.Len(t, SplitCIDR("2001:db8::/32"), 33)
	assert.Equal(t, "", ConcatCIDR(nil))

	assert.Panics(t, func() {
		SplitCIDR("not a cidr")
	}, "SplitCIDR should panic on invalid input")
}

// TestCIDRTrie verifies that an enclosing network is the parent of a network one bit longer.
func TestCIDRTrie(t *testing.T) {
	tr := CIDR().NewTrie()
	tr.Insert("192.168.0.0/16")
	tr.Insert("192.168.0.0/23")
	tr.Insert("192.168.0.0/24")
	tr.Insert("2001:db8::/32")

	it := tr.Find("192.168.0.0/24")
	require.False(t, it.IsEnd())
	assert.Equal(t, "192.168.0.0/24", it.Value())

	parent := tr.FindParent(it)
	require.False(t, parent.IsEnd())
	assert.Equal(t, "192.168.0.0/23", parent.Value())
	assert.True(t, tr.FindParent(parent).IsEnd(), "/22 was never inserted")

	assert.True(t, tr.Find("192.168.0.0/22").IsEnd())
	assert.Equal(t, "2001:db8::/32", tr.Find("2001:db8::/32").Value())
	assert.Equal(t, []string{"192.168.0.0/16", "192.168.0.0/23", "192.168.0.0/24", "2001:db8::/32"}, tr.Keys())
}

// TestCIDRRoundTripFakeData verifies that random networks come back unchanged.
func TestCIDRRoundTripFakeData(t *testing.T) {
	t.Parallel()

	const (
		total = 2_000
		seed  = 1234567890
	)

	var (
		codec    = CIDR()
		tr       = codec.NewTrie()
		fake     = gofakeit.New(seed)
		networks = map[string]bool{}
	)

	for i := 0; i < total; i++ {
		key, err := codec.Parse(fake.IPv4Address() + "/" + fake.RandomString([]string{"8", "16", "24", "32"}))
		require.NoError(t, err)
		tr.Insert(key)
		networks[key] = true
	}

	for key := range networks {
		it := tr.Find(key)
		require.False(t, it.IsEnd(), key)
		assert.Equal(t, key, it.Value())
	}
	assert.Equal(t, len(networks), tr.Len())
}
