package network

import (
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/statematrix"
)

// DeleteEmptyFibersCore prunes bypass chains of the pair [topLayer, Fxc] or
// [topLayer, Sxc] whose entry fiber (and, transitively, every fiber along
// the chain traced via GetFiberSequenceCore) carries zero assigned
// demands. Each pruned chain's endpoint SD (entry fiber's source, exit
// fiber's destination) is pushed onto the taboo list for its type pair so
// the discovery package never re-proposes it.
func (n *Network) DeleteEmptyFibersCore(topLayer XCType) []ids.SD {
	var tabooed []ids.SD
	for _, id := range append([]FiberID(nil), n.fiberOrder...) {
		f, ok := n.fibers[id]
		if !ok {
			continue
		}
		if f.SDXCType != [2]XCType{topLayer, Fxc} && f.SDXCType != [2]XCType{topLayer, Sxc} {
			continue
		}
		if f.CountUsedSlots() != 0 {
			continue
		}
		chain, err := n.GetFiberSequenceCore(id, 0)
		if err != nil {
			continue
		}
		allEmpty := true
		for _, fid := range chain {
			cf, ok := n.fibers[fid]
			if !ok || cf.CountUsedSlots() != 0 {
				allEmpty = false
				break
			}
		}
		if !allEmpty {
			continue
		}
		first, last := n.fibers[chain[0]], n.fibers[chain[len(chain)-1]]
		sd := ids.NewSD(first.Edge.Src, last.Edge.Dst)
		pairType := first.SDXCType
		for _, fid := range chain {
			_ = n.DeleteFiber(fid)
		}
		n.recordTaboo(pairType, sd)
		tabooed = append(tabooed, sd)
	}
	return tabooed
}

// DeleteEmptyFibersWb prunes waveband bypasses of the pair [topLayer,
// Wbxc]: for every entry fiber and every waveband, it traces the bypass
// chain and, only when every slot of that waveband is empty across the
// entire chain, dissolves the Wbxc switching entries stitching the chain
// together and pushes the endpoint SD onto the taboo list. A chain fiber
// is only deleted outright once it carries no traffic on any waveband
// (Wbxc fibers may be shared by more than one waveband's bypass).
func (n *Network) DeleteEmptyFibersWb(topLayer XCType) []ids.SD {
	var tabooed []ids.SD
	for _, id := range append([]FiberID(nil), n.fiberOrder...) {
		f, ok := n.fibers[id]
		if !ok || f.SDXCType != [2]XCType{topLayer, Wbxc} {
			continue
		}
		for _, wb := range statematrix.AllWavebands() {
			chain, err := n.GetFiberSequenceWb(id, wb)
			if err != nil {
				continue
			}
			allEmpty := true
			for _, fid := range chain {
				cf, ok := n.fibers[fid]
				if !ok || !cf.WavebandEmpty(0, wb) {
					allEmpty = false
					break
				}
			}
			if !allEmpty {
				continue
			}
			for i := 0; i+1 < len(chain); i++ {
				cur, next := n.fibers[chain[i]], n.fibers[chain[i+1]]
				xc, err := n.XCByPort(cur.DstPortIDs[0])
				if err != nil {
					continue
				}
				_ = xc.DisconnectIOWaveband(cur.DstPortIDs[0], next.SrcPortIDs[0], wb)
			}
			first, last := n.fibers[chain[0]], n.fibers[chain[len(chain)-1]]
			sd := ids.NewSD(first.Edge.Src, last.Edge.Dst)
			n.recordTaboo([2]XCType{topLayer, Wbxc}, sd)
			tabooed = append(tabooed, sd)

			for _, fid := range chain {
				if cf, ok := n.fibers[fid]; ok && !cf.Initial && cf.CountUsedSlots() == 0 {
					_ = n.DeleteFiber(fid)
				}
			}
		}
	}
	return tabooed
}
