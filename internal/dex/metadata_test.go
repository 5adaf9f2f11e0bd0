package dex

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPool   = common.HexToAddress("0x88E6A0c2dDD26FEEb64F039a2c41296FcB3f5640")
	testToken0 = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	testToken1 = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	testMKR    = common.HexToAddress("0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2")
)

type fakeCaller struct {
	mu          sync.Mutex
	responses   map[string][]byte
	transient   map[string]int
	failAtBlock bool
	calls       int
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{responses: map[string][]byte{}, transient: map[string]int{}}
}

func callKey(to common.Address, selector []byte) string {
	return strings.ToLower(to.Hex()) + ":" + hexutil.Encode(selector)
}

func (f *fakeCaller) respond(t *testing.T, parsed abi.ABI, to common.Address, method string, values ...interface{}) {
	t.Helper()
	m, ok := parsed.Methods[method]
	require.True(t, ok, method)
	out, err := m.Outputs.Pack(values...)
	require.NoError(t, err, method)
	f.responses[callKey(to, m.ID)] = out
}

func (f *fakeCaller) CallContract(_ context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	key := callKey(*msg.To, msg.Data[:4])
	if f.transient[key] > 0 {
		f.transient[key]--
		return nil, errors.New("connection reset")
	}
	if block != nil && f.failAtBlock {
		return nil, errors.New("missing trie node")
	}
	resp, ok := f.responses[key]
	if !ok {
		return nil, errors.New("execution reverted")
	}
	return resp, nil
}

func (f *fakeCaller) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestReader(caller ContractCaller) *MetaReader {
	return NewMetaReader(caller, MetaReaderConfig{MaxRetries: 2, RetryBackoff: time.Millisecond})
}

func mustABI(t *testing.T) (abi.ABI, abi.ABI, abi.ABI) {
	t.Helper()
	poolABI, err := V3PoolABI()
	require.NoError(t, err)
	stringABI, err := erc20ABIStringInstance()
	require.NoError(t, err)
	bytes32ABI, err := erc20ABIBytes32Instance()
	require.NoError(t, err)
	return poolABI, stringABI, bytes32ABI
}

func TestMetaReaderPoolMeta(t *testing.T) {
	poolABI, _, _ := mustABI(t)
	factory := common.HexToAddress("0x1F98431c8aD98523631AE4a59f267346ea31F984")

	caller := newFakeCaller()
	caller.respond(t, poolABI, testPool, "token0", testToken0)
	caller.respond(t, poolABI, testPool, "token1", testToken1)
	caller.respond(t, poolABI, testPool, "fee", big.NewInt(500))
	caller.respond(t, poolABI, testPool, "tickSpacing", big.NewInt(10))
	caller.respond(t, poolABI, testPool, "factory", factory)
	caller.transient[callKey(testPool, poolABI.Methods["token0"].ID)] = 1

	reader := newTestReader(caller)
	meta, err := reader.PoolMeta(context.Background(), testPool.Hex())
	require.NoError(t, err)

	assert.Equal(t, strings.ToLower(factory.Hex()), meta.Factory)
	assert.Equal(t, strings.ToLower(testToken0.Hex()), meta.Token0)
	assert.Equal(t, strings.ToLower(testToken1.Hex()), meta.Token1)
	assert.Equal(t, uint32(500), meta.Fee)
	assert.Equal(t, int32(10), meta.TickSpacing)

	calls := caller.callCount()
	again, err := reader.PoolMeta(context.Background(), strings.ToLower(testPool.Hex()))
	require.NoError(t, err)
	assert.Equal(t, meta, again)
	assert.Equal(t, calls, caller.callCount(), "second read should hit the cache")
}

func TestMetaReaderPoolMetaWithoutFactory(t *testing.T) {
	poolABI, _, _ := mustABI(t)

	caller := newFakeCaller()
	caller.respond(t, poolABI, testPool, "token0", testToken0)
	caller.respond(t, poolABI, testPool, "token1", testToken1)
	caller.respond(t, poolABI, testPool, "fee", big.NewInt(3000))
	caller.respond(t, poolABI, testPool, "tickSpacing", big.NewInt(60))

	meta, err := newTestReader(caller).PoolMeta(context.Background(), testPool.Hex())
	require.NoError(t, err)
	assert.Empty(t, meta.Factory)
	assert.Equal(t, uint32(3000), meta.Fee)
}

func TestMetaReaderPoolMetaErrors(t *testing.T) {
	reader := newTestReader(newFakeCaller())

	_, err := reader.PoolMeta(context.Background(), "not-an-address")
	require.Error(t, err)

	_, err = reader.PoolMeta(context.Background(), testPool.Hex())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token0")
}

func TestMetaReaderTokenMeta(t *testing.T) {
	_, stringABI, bytes32ABI := mustABI(t)

	caller := newFakeCaller()
	caller.respond(t, stringABI, testToken0, "decimals", uint8(6))
	caller.respond(t, stringABI, testToken0, "symbol", "USDC")
	caller.respond(t, stringABI, testToken0, "name", "USD Coin")

	var symbol, name [32]byte
	copy(symbol[:], "MKR")
	copy(name[:], "Maker")
	caller.respond(t, stringABI, testMKR, "decimals", uint8(18))
	caller.respond(t, bytes32ABI, testMKR, "symbol", symbol)
	caller.respond(t, bytes32ABI, testMKR, "name", name)

	reader := newTestReader(caller)

	usdc, err := reader.TokenMeta(context.Background(), testToken0.Hex())
	require.NoError(t, err)
	assert.Equal(t, uint8(6), usdc.Decimals)
	assert.Equal(t, "USDC", usdc.Symbol)
	assert.Equal(t, "USD Coin", usdc.Name)
	assert.Equal(t, strings.ToLower(testToken0.Hex()), usdc.Address)

	mkr, err := reader.TokenMeta(context.Background(), testMKR.Hex())
	require.NoError(t, err)
	assert.Equal(t, uint8(18), mkr.Decimals)
	assert.Equal(t, "MKR", mkr.Symbol)
	assert.Equal(t, "Maker", mkr.Name)
}

func TestMetaReaderTokenMetaMissingText(t *testing.T) {
	_, stringABI, _ := mustABI(t)

	caller := newFakeCaller()
	caller.respond(t, stringABI, testToken1, "decimals", uint8(18))

	meta, err := newTestReader(caller).TokenMeta(context.Background(), testToken1.Hex())
	require.NoError(t, err)
	assert.Equal(t, uint8(18), meta.Decimals)
	assert.Empty(t, meta.Symbol)
	assert.Empty(t, meta.Name)
}

func TestMetaReaderSlot0AndLiquidity(t *testing.T) {
	poolABI, _, _ := mustABI(t)
	sqrt := new(big.Int).Lsh(big.NewInt(1), 96)

	caller := newFakeCaller()
	caller.respond(t, poolABI, testPool, "slot0",
		sqrt, big.NewInt(-200), uint16(1), uint16(1), uint16(1), uint8(0), true)
	caller.respond(t, poolABI, testPool, "liquidity", big.NewInt(123456))

	reader := newTestReader(caller)
	slot0, err := reader.Slot0(context.Background(), testPool.Hex(), 100)
	require.NoError(t, err)
	assert.Equal(t, 0, slot0.SqrtPriceX96.ToBig().Cmp(sqrt))
	assert.Equal(t, int32(-200), slot0.Tick)

	liquidity, err := reader.Liquidity(context.Background(), testPool.Hex(), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), liquidity.Uint64())
}

func TestMetaReaderPoolBalances(t *testing.T) {
	_, stringABI, _ := mustABI(t)

	caller := newFakeCaller()
	caller.respond(t, stringABI, testToken0, "balanceOf", big.NewInt(1_000_000))
	caller.respond(t, stringABI, testToken1, "balanceOf", big.NewInt(2_000_000))

	reader := newTestReader(caller)
	bal0, bal1, err := reader.PoolBalances(context.Background(), testPool.Hex(), testToken0.Hex(), testToken1.Hex(), 17_000_000)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), bal0.Int64())
	assert.Equal(t, int64(2_000_000), bal1.Int64())
}

func TestMetaReaderPoolBalancesFallsBackToLatest(t *testing.T) {
	_, stringABI, _ := mustABI(t)

	caller := newFakeCaller()
	caller.failAtBlock = true
	caller.respond(t, stringABI, testToken0, "balanceOf", big.NewInt(7))
	caller.respond(t, stringABI, testToken1, "balanceOf", big.NewInt(9))

	reader := NewMetaReader(caller, MetaReaderConfig{MaxRetries: 0})
	bal0, bal1, err := reader.PoolBalances(context.Background(), testPool.Hex(), testToken0.Hex(), testToken1.Hex(), 17_000_000)
	require.NoError(t, err)
	assert.Equal(t, int64(7), bal0.Int64())
	assert.Equal(t, int64(9), bal1.Int64())
}

func TestMetaReaderPoolBalancesFailure(t *testing.T) {
	reader := NewMetaReader(newFakeCaller(), MetaReaderConfig{MaxRetries: 0})
	_, _, err := reader.PoolBalances(context.Background(), testPool.Hex(), testToken0.Hex(), testToken1.Hex(), 1)
	require.Error(t, err)

	_, _, err = reader.PoolBalances(context.Background(), testPool.Hex(), "0x1234", testToken1.Hex(), 1)
	require.Error(t, err)
}
