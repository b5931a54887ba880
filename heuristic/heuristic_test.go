package heuristic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nanofcn/fcnpr/clocking"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/heuristic"
	"github.com/nanofcn/fcnpr/network"
)

var _ = Describe("Place", func() {
	var scheme *clocking.Scheme

	BeforeEach(func() {
		var err error
		scheme, err = clocking.Named("USE")
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an empty network", func() {
		n := network.New()
		_, err := heuristic.Place(n, scheme)
		Expect(err).To(MatchError(heuristic.ErrEmptyNetwork))
	})

	It("rejects a network still carrying XOR", func() {
		n := network.New()
		a := n.CreatePI("a")
		b := n.CreatePI("b")
		_, err := n.CreateXor(a, b)
		Expect(err).NotTo(HaveOccurred())

		_, err = heuristic.Place(n, scheme)
		Expect(err).To(MatchError(heuristic.ErrUnsupportedLogic))
	})

	It("places a small AND tree with the first PI at the bounding box's top-left corner", func() {
		n := network.New()
		a := n.CreatePI("a")
		b := n.CreatePI("b")
		and, err := n.CreateAnd(a, b)
		Expect(err).NotTo(HaveOccurred())
		po, err := n.CreatePO(and, "y")
		Expect(err).NotTo(HaveOccurred())

		l, err := heuristic.Place(n, scheme)
		Expect(err).NotTo(HaveOccurred())

		aTile, ok := l.TileOf(a)
		Expect(ok).To(BeTrue())
		Expect(aTile).To(Equal(grid.Tile{X: 0, Y: 0}))
		Expect(l.IsPI(aTile)).To(BeTrue())

		poTile, ok := l.TileOf(po)
		Expect(ok).To(BeTrue())
		Expect(l.IsPO(poTile)).To(BeTrue())

		andTile, ok := l.TileOf(and)
		Expect(ok).To(BeTrue())
		Expect(l.IsGateTile(andTile)).To(BeTrue())

		bTile, ok := l.TileOf(b)
		Expect(ok).To(BeTrue())

		minX, minY, _, _, hasBox := l.BoundingBox()
		Expect(hasBox).To(BeTrue())
		Expect(minX).To(Equal(0))
		Expect(minY).To(Equal(0))

		// The PO must sit strictly to the right of the gate feeding it, and
		// the AND gate must sit at or to the right of both of its fan-in tiles.
		Expect(poTile.X).To(BeNumerically(">", andTile.X))
		Expect(andTile.X).To(BeNumerically(">=", aTile.X))
		Expect(andTile.X).To(BeNumerically(">=", bTile.X))
	})

	It("routes a deeper chain with the inverter's input and output on different sides", func() {
		n := network.New()
		a := n.CreatePI("a")
		nota, err := n.CreateNot(a)
		Expect(err).NotTo(HaveOccurred())
		buf, err := n.CreateBuf(nota)
		Expect(err).NotTo(HaveOccurred())
		_, err = n.CreatePO(buf, "y")
		Expect(err).NotTo(HaveOccurred())

		l, err := heuristic.Place(n, scheme)
		Expect(err).NotTo(HaveOccurred())

		notTile, ok := l.TileOf(nota)
		Expect(ok).To(BeTrue())
		Expect(l.TileInDirs(notTile)).NotTo(Equal(l.TileOutDirs(notTile)))
	})
})
