// blackhole: accepts every write and retains nothing.
//
// Every Put succeeds and discards its value; every lookup reports NotFound;
// every count is zero; every iteration completes without invoking its
// callback. Useful for exercising non-OK status paths and for measuring
// overhead above the engine.
package engine

type blackholeEngine struct{}

func openBlackhole(*Config) (Engine, Status) {
	return blackholeEngine{}, OK
}

func (blackholeEngine) Put(key, value []byte) Status { return OK }

func (blackholeEngine) Get(key []byte, fn GetFunc, ctx any) Status { return NotFound }

func (blackholeEngine) Remove(key []byte) Status { return NotFound }

func (blackholeEngine) Exists(key []byte) Status { return NotFound }

func (blackholeEngine) CountAll() (uint64, Status) { return 0, OK }

func (blackholeEngine) CountAbove(key []byte) (uint64, Status) { return 0, OK }

func (blackholeEngine) CountBelow(key []byte) (uint64, Status) { return 0, OK }

func (blackholeEngine) CountBetween(k1, k2 []byte) (uint64, Status) { return 0, OK }

func (blackholeEngine) GetAll(fn EachFunc, ctx any) Status { return OK }

func (blackholeEngine) GetAbove(key []byte, fn EachFunc, ctx any) Status { return OK }

func (blackholeEngine) GetBelow(key []byte, fn EachFunc, ctx any) Status { return OK }

func (blackholeEngine) GetBetween(k1, k2 []byte, fn EachFunc, ctx any) Status { return OK }

func (blackholeEngine) Close() {}
