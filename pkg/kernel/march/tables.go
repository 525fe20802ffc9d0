package march

// Cube layout. Corner n sits at cornerOffset[n] relative to the cell's lower
// grid index:
//
//	    7 -------- 6
//	   /|         /|
//	  4 -------- 5 |        z
//	  | |        | |        | y
//	  | 3 -------|-2        |/
//	  |/         |/         +--- x
//	  0 -------- 1
//
// Edge n joins corners edgeCorners[n], listed lower grid coordinate first so
// the crossing on a grid edge is computed the same way by every cell sharing
// it.
var cornerOffset = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

var edgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {3, 2}, {0, 3},
	{4, 5}, {5, 6}, {7, 6}, {4, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// edgeAxis is the grid axis each edge runs along.
var edgeAxis = [12]int{0, 1, 0, 1, 0, 1, 0, 1, 2, 2, 2, 2}

// edgeMask[c] has bit n set when edge n is crossed in case c.
var edgeMask = [256]uint16{
	0x000, 0x109, 0x203, 0x30a, 0x406, 0x50f, 0x605, 0x70c,
	0x80c, 0x905, 0xa0f, 0xb06, 0xc0a, 0xd03, 0xe09, 0xf00,
	0x190, 0x099, 0x393, 0x29a, 0x596, 0x49f, 0x795, 0x69c,
	0x99c, 0x895, 0xb9f, 0xa96, 0xd9a, 0xc93, 0xf99, 0xe90,
	0x230, 0x339, 0x033, 0x13a, 0x636, 0x73f, 0x435, 0x53c,
	0xa3c, 0xb35, 0x83f, 0x936, 0xe3a, 0xf33, 0xc39, 0xd30,
	0x3a0, 0x2a9, 0x1a3, 0x0aa, 0x7a6, 0x6af, 0x5a5, 0x4ac,
	0xbac, 0xaa5, 0x9af, 0x8a6, 0xfaa, 0xea3, 0xda9, 0xca0,
	0x460, 0x569, 0x663, 0x76a, 0x066, 0x16f, 0x265, 0x36c,
	0xc6c, 0xd65, 0xe6f, 0xf66, 0x86a, 0x963, 0xa69, 0xb60,
	0x5f0, 0x4f9, 0x7f3, 0x6fa, 0x1f6, 0x0ff, 0x3f5, 0x2fc,
	0xdfc, 0xcf5, 0xfff, 0xef6, 0x9fa, 0x8f3, 0xbf9, 0xaf0,
	0x650, 0x759, 0x453, 0x55a, 0x256, 0x35f, 0x055, 0x15c,
	0xe5c, 0xf55, 0xc5f, 0xd56, 0xa5a, 0xb53, 0x859, 0x950,
	0x7c0, 0x6c9, 0x5c3, 0x4ca, 0x3c6, 0x2cf, 0x1c5, 0x0cc,
	0xfcc, 0xec5, 0xdcf, 0xcc6, 0xbca, 0xac3, 0x9c9, 0x8c0,
	0x8c0, 0x9c9, 0xac3, 0xbca, 0xcc6, 0xdcf, 0xec5, 0xfcc,
	0x0cc, 0x1c5, 0x2cf, 0x3c6, 0x4ca, 0x5c3, 0x6c9, 0x7c0,
	0x950, 0x859, 0xb53, 0xa5a, 0xd56, 0xc5f, 0xf55, 0xe5c,
	0x15c, 0x055, 0x35f, 0x256, 0x55a, 0x453, 0x759, 0x650,
	0xaf0, 0xbf9, 0x8f3, 0x9fa, 0xef6, 0xfff, 0xcf5, 0xdfc,
	0x2fc, 0x3f5, 0x0ff, 0x1f6, 0x6fa, 0x7f3, 0x4f9, 0x5f0,
	0xb60, 0xa69, 0x963, 0x86a, 0xf66, 0xe6f, 0xd65, 0xc6c,
	0x36c, 0x265, 0x16f, 0x066, 0x76a, 0x663, 0x569, 0x460,
	0xca0, 0xda9, 0xea3, 0xfaa, 0x8a6, 0x9af, 0xaa5, 0xbac,
	0x4ac, 0x5a5, 0x6af, 0x7a6, 0x0aa, 0x1a3, 0x2a9, 0x3a0,
	0xd30, 0xc39, 0xf33, 0xe3a, 0x936, 0x83f, 0xb35, 0xa3c,
	0x53c, 0x435, 0x73f, 0x636, 0x13a, 0x033, 0x339, 0x230,
	0xe90, 0xf99, 0xc93, 0xd9a, 0xa96, 0xb9f, 0x895, 0x99c,
	0x69c, 0x795, 0x49f, 0x596, 0x29a, 0x393, 0x099, 0x190,
	0xf00, 0xe09, 0xd03, 0xc0a, 0xb06, 0xa0f, 0x905, 0x80c,
	0x70c, 0x605, 0x50f, 0x406, 0x30a, 0x203, 0x109, 0x000,
}

// triTable maps a case index (bit n set when corner n is outside, i.e. below
// the level) to the triangles emitted for the cell, as triples of edge
// numbers. Triangles are wound counter-clockwise seen from the outside.
// On faces with two diagonal outside corners the outside corners are always
// separated, so the two cells sharing such a face pick the same segments.
var triTable = [256][][3]uint8{
	/*   0 */ {},
	/*   1 */ {{0, 8, 3}},
	/*   2 */ {{0, 1, 9}},
	/*   3 */ {{1, 8, 3}, {1, 9, 8}},
	/*   4 */ {{1, 2, 10}},
	/*   5 */ {{0, 8, 3}, {1, 2, 10}},
	/*   6 */ {{0, 10, 9}, {0, 2, 10}},
	/*   7 */ {{2, 8, 3}, {2, 9, 8}, {2, 10, 9}},
	/*   8 */ {{2, 3, 11}},
	/*   9 */ {{0, 11, 2}, {0, 8, 11}},
	/*  10 */ {{0, 1, 9}, {2, 3, 11}},
	/*  11 */ {{1, 11, 2}, {1, 8, 11}, {1, 9, 8}},
	/*  12 */ {{1, 11, 10}, {1, 3, 11}},
	/*  13 */ {{0, 10, 1}, {0, 11, 10}, {0, 8, 11}},
	/*  14 */ {{0, 10, 9}, {0, 11, 10}, {0, 3, 11}},
	/*  15 */ {{8, 10, 9}, {8, 11, 10}},
	/*  16 */ {{4, 7, 8}},
	/*  17 */ {{0, 7, 3}, {0, 4, 7}},
	/*  18 */ {{0, 1, 9}, {4, 7, 8}},
	/*  19 */ {{1, 7, 3}, {1, 4, 7}, {1, 9, 4}},
	/*  20 */ {{1, 2, 10}, {4, 7, 8}},
	/*  21 */ {{0, 7, 3}, {0, 4, 7}, {1, 2, 10}},
	/*  22 */ {{0, 10, 9}, {0, 2, 10}, {4, 7, 8}},
	/*  23 */ {{2, 7, 3}, {2, 4, 7}, {2, 9, 4}, {2, 10, 9}},
	/*  24 */ {{2, 3, 11}, {4, 7, 8}},
	/*  25 */ {{0, 11, 2}, {0, 7, 11}, {0, 4, 7}},
	/*  26 */ {{0, 1, 9}, {2, 3, 11}, {4, 7, 8}},
	/*  27 */ {{1, 11, 2}, {1, 7, 11}, {1, 4, 7}, {1, 9, 4}},
	/*  28 */ {{1, 11, 10}, {1, 3, 11}, {4, 7, 8}},
	/*  29 */ {{0, 10, 1}, {0, 11, 10}, {0, 7, 11}, {0, 4, 7}},
	/*  30 */ {{0, 10, 9}, {0, 11, 10}, {0, 3, 11}, {4, 7, 8}},
	/*  31 */ {{4, 10, 9}, {4, 11, 10}, {4, 7, 11}},
	/*  32 */ {{4, 9, 5}},
	/*  33 */ {{0, 8, 3}, {4, 9, 5}},
	/*  34 */ {{0, 5, 4}, {0, 1, 5}},
	/*  35 */ {{1, 8, 3}, {1, 4, 8}, {1, 5, 4}},
	/*  36 */ {{1, 2, 10}, {4, 9, 5}},
	/*  37 */ {{0, 8, 3}, {1, 2, 10}, {4, 9, 5}},
	/*  38 */ {{0, 5, 4}, {0, 10, 5}, {0, 2, 10}},
	/*  39 */ {{2, 8, 3}, {2, 4, 8}, {2, 5, 4}, {2, 10, 5}},
	/*  40 */ {{2, 3, 11}, {4, 9, 5}},
	/*  41 */ {{0, 11, 2}, {0, 8, 11}, {4, 9, 5}},
	/*  42 */ {{0, 5, 4}, {0, 1, 5}, {2, 3, 11}},
	/*  43 */ {{1, 11, 2}, {1, 8, 11}, {1, 4, 8}, {1, 5, 4}},
	/*  44 */ {{1, 11, 10}, {1, 3, 11}, {4, 9, 5}},
	/*  45 */ {{0, 10, 1}, {0, 11, 10}, {0, 8, 11}, {4, 9, 5}},
	/*  46 */ {{0, 5, 4}, {0, 10, 5}, {0, 11, 10}, {0, 3, 11}},
	/*  47 */ {{4, 10, 5}, {4, 11, 10}, {4, 8, 11}},
	/*  48 */ {{5, 8, 9}, {5, 7, 8}},
	/*  49 */ {{0, 7, 3}, {0, 5, 7}, {0, 9, 5}},
	/*  50 */ {{0, 7, 8}, {0, 5, 7}, {0, 1, 5}},
	/*  51 */ {{1, 7, 3}, {1, 5, 7}},
	/*  52 */ {{1, 2, 10}, {5, 8, 9}, {5, 7, 8}},
	/*  53 */ {{0, 7, 3}, {0, 5, 7}, {0, 9, 5}, {1, 2, 10}},
	/*  54 */ {{0, 7, 8}, {0, 5, 7}, {0, 10, 5}, {0, 2, 10}},
	/*  55 */ {{2, 7, 3}, {2, 5, 7}, {2, 10, 5}},
	/*  56 */ {{2, 3, 11}, {5, 8, 9}, {5, 7, 8}},
	/*  57 */ {{0, 11, 2}, {0, 7, 11}, {0, 5, 7}, {0, 9, 5}},
	/*  58 */ {{0, 7, 8}, {0, 5, 7}, {0, 1, 5}, {2, 3, 11}},
	/*  59 */ {{1, 11, 2}, {1, 7, 11}, {1, 5, 7}},
	/*  60 */ {{1, 11, 10}, {1, 3, 11}, {5, 8, 9}, {5, 7, 8}},
	/*  61 */ {{0, 10, 1}, {0, 11, 10}, {0, 7, 11}, {0, 5, 7}, {0, 9, 5}},
	/*  62 */ {{0, 7, 8}, {0, 5, 7}, {0, 10, 5}, {0, 11, 10}, {0, 3, 11}},
	/*  63 */ {{5, 11, 10}, {5, 7, 11}},
	/*  64 */ {{5, 10, 6}},
	/*  65 */ {{0, 8, 3}, {5, 10, 6}},
	/*  66 */ {{0, 1, 9}, {5, 10, 6}},
	/*  67 */ {{1, 8, 3}, {1, 9, 8}, {5, 10, 6}},
	/*  68 */ {{1, 6, 5}, {1, 2, 6}},
	/*  69 */ {{0, 8, 3}, {1, 6, 5}, {1, 2, 6}},
	/*  70 */ {{0, 5, 9}, {0, 6, 5}, {0, 2, 6}},
	/*  71 */ {{2, 8, 3}, {2, 9, 8}, {2, 5, 9}, {2, 6, 5}},
	/*  72 */ {{2, 3, 11}, {5, 10, 6}},
	/*  73 */ {{0, 11, 2}, {0, 8, 11}, {5, 10, 6}},
	/*  74 */ {{0, 1, 9}, {2, 3, 11}, {5, 10, 6}},
	/*  75 */ {{1, 11, 2}, {1, 8, 11}, {1, 9, 8}, {5, 10, 6}},
	/*  76 */ {{1, 6, 5}, {1, 11, 6}, {1, 3, 11}},
	/*  77 */ {{0, 5, 1}, {0, 6, 5}, {0, 11, 6}, {0, 8, 11}},
	/*  78 */ {{0, 5, 9}, {0, 6, 5}, {0, 11, 6}, {0, 3, 11}},
	/*  79 */ {{5, 11, 6}, {5, 8, 11}, {5, 9, 8}},
	/*  80 */ {{4, 7, 8}, {5, 10, 6}},
	/*  81 */ {{0, 7, 3}, {0, 4, 7}, {5, 10, 6}},
	/*  82 */ {{0, 1, 9}, {4, 7, 8}, {5, 10, 6}},
	/*  83 */ {{1, 7, 3}, {1, 4, 7}, {1, 9, 4}, {5, 10, 6}},
	/*  84 */ {{1, 6, 5}, {1, 2, 6}, {4, 7, 8}},
	/*  85 */ {{0, 7, 3}, {0, 4, 7}, {1, 6, 5}, {1, 2, 6}},
	/*  86 */ {{0, 5, 9}, {0, 6, 5}, {0, 2, 6}, {4, 7, 8}},
	/*  87 */ {{2, 7, 3}, {2, 4, 7}, {2, 9, 4}, {2, 5, 9}, {2, 6, 5}},
	/*  88 */ {{2, 3, 11}, {4, 7, 8}, {5, 10, 6}},
	/*  89 */ {{0, 11, 2}, {0, 7, 11}, {0, 4, 7}, {5, 10, 6}},
	/*  90 */ {{0, 1, 9}, {2, 3, 11}, {4, 7, 8}, {5, 10, 6}},
	/*  91 */ {{1, 11, 2}, {1, 7, 11}, {1, 4, 7}, {1, 9, 4}, {5, 10, 6}},
	/*  92 */ {{1, 6, 5}, {1, 11, 6}, {1, 3, 11}, {4, 7, 8}},
	/*  93 */ {{0, 5, 1}, {0, 6, 5}, {0, 11, 6}, {0, 7, 11}, {0, 4, 7}},
	/*  94 */ {{0, 5, 9}, {0, 6, 5}, {0, 11, 6}, {0, 3, 11}, {4, 7, 8}},
	/*  95 */ {{4, 11, 9}, {9, 6, 5}, {9, 11, 6}, {4, 7, 11}},
	/*  96 */ {{4, 10, 6}, {4, 9, 10}},
	/*  97 */ {{0, 8, 3}, {4, 10, 6}, {4, 9, 10}},
	/*  98 */ {{0, 6, 4}, {0, 10, 6}, {0, 1, 10}},
	/*  99 */ {{1, 8, 3}, {1, 4, 8}, {1, 6, 4}, {1, 10, 6}},
	/* 100 */ {{1, 4, 9}, {1, 6, 4}, {1, 2, 6}},
	/* 101 */ {{0, 8, 3}, {1, 4, 9}, {1, 6, 4}, {1, 2, 6}},
	/* 102 */ {{0, 6, 4}, {0, 2, 6}},
	/* 103 */ {{2, 8, 3}, {2, 4, 8}, {2, 6, 4}},
	/* 104 */ {{2, 3, 11}, {4, 10, 6}, {4, 9, 10}},
	/* 105 */ {{0, 11, 2}, {0, 8, 11}, {4, 10, 6}, {4, 9, 10}},
	/* 106 */ {{0, 6, 4}, {0, 10, 6}, {0, 1, 10}, {2, 3, 11}},
	/* 107 */ {{1, 11, 2}, {1, 8, 11}, {1, 4, 8}, {1, 6, 4}, {1, 10, 6}},
	/* 108 */ {{1, 4, 9}, {1, 6, 4}, {1, 11, 6}, {1, 3, 11}},
	/* 109 */ {{0, 6, 1}, {1, 4, 9}, {1, 6, 4}, {0, 11, 6}, {0, 8, 11}},
	/* 110 */ {{0, 6, 4}, {0, 11, 6}, {0, 3, 11}},
	/* 111 */ {{4, 11, 6}, {4, 8, 11}},
	/* 112 */ {{6, 9, 10}, {6, 8, 9}, {6, 7, 8}},
	/* 113 */ {{0, 7, 3}, {0, 6, 7}, {0, 10, 6}, {0, 9, 10}},
	/* 114 */ {{0, 7, 8}, {0, 6, 7}, {0, 10, 6}, {0, 1, 10}},
	/* 115 */ {{1, 7, 3}, {1, 6, 7}, {1, 10, 6}},
	/* 116 */ {{1, 8, 9}, {1, 7, 8}, {1, 6, 7}, {1, 2, 6}},
	/* 117 */ {{0, 7, 3}, {0, 6, 7}, {0, 9, 6}, {6, 1, 2}, {6, 9, 1}},
	/* 118 */ {{0, 7, 8}, {0, 6, 7}, {0, 2, 6}},
	/* 119 */ {{2, 7, 3}, {2, 6, 7}},
	/* 120 */ {{2, 3, 11}, {6, 9, 10}, {6, 8, 9}, {6, 7, 8}},
	/* 121 */ {{0, 11, 2}, {0, 7, 11}, {0, 6, 7}, {0, 10, 6}, {0, 9, 10}},
	/* 122 */ {{0, 7, 8}, {0, 6, 7}, {0, 10, 6}, {0, 1, 10}, {2, 3, 11}},
	/* 123 */ {{1, 11, 2}, {1, 7, 11}, {1, 6, 7}, {1, 10, 6}},
	/* 124 */ {{1, 8, 9}, {1, 7, 8}, {1, 6, 7}, {1, 11, 6}, {1, 3, 11}},
	/* 125 */ {{0, 9, 1}, {6, 7, 11}},
	/* 126 */ {{0, 7, 8}, {0, 6, 7}, {0, 11, 6}, {0, 3, 11}},
	/* 127 */ {{6, 7, 11}},
	/* 128 */ {{6, 11, 7}},
	/* 129 */ {{0, 8, 3}, {6, 11, 7}},
	/* 130 */ {{0, 1, 9}, {6, 11, 7}},
	/* 131 */ {{1, 8, 3}, {1, 9, 8}, {6, 11, 7}},
	/* 132 */ {{1, 2, 10}, {6, 11, 7}},
	/* 133 */ {{0, 8, 3}, {1, 2, 10}, {6, 11, 7}},
	/* 134 */ {{0, 10, 9}, {0, 2, 10}, {6, 11, 7}},
	/* 135 */ {{2, 8, 3}, {2, 9, 8}, {2, 10, 9}, {6, 11, 7}},
	/* 136 */ {{2, 7, 6}, {2, 3, 7}},
	/* 137 */ {{0, 6, 2}, {0, 7, 6}, {0, 8, 7}},
	/* 138 */ {{0, 1, 9}, {2, 7, 6}, {2, 3, 7}},
	/* 139 */ {{1, 6, 2}, {1, 7, 6}, {1, 8, 7}, {1, 9, 8}},
	/* 140 */ {{1, 6, 10}, {1, 7, 6}, {1, 3, 7}},
	/* 141 */ {{0, 10, 1}, {0, 6, 10}, {0, 7, 6}, {0, 8, 7}},
	/* 142 */ {{0, 10, 9}, {0, 6, 10}, {0, 7, 6}, {0, 3, 7}},
	/* 143 */ {{6, 8, 7}, {6, 9, 8}, {6, 10, 9}},
	/* 144 */ {{4, 11, 8}, {4, 6, 11}},
	/* 145 */ {{0, 11, 3}, {0, 6, 11}, {0, 4, 6}},
	/* 146 */ {{0, 1, 9}, {4, 11, 8}, {4, 6, 11}},
	/* 147 */ {{1, 11, 3}, {1, 6, 11}, {1, 4, 6}, {1, 9, 4}},
	/* 148 */ {{1, 2, 10}, {4, 11, 8}, {4, 6, 11}},
	/* 149 */ {{0, 11, 3}, {0, 6, 11}, {0, 4, 6}, {1, 2, 10}},
	/* 150 */ {{0, 10, 9}, {0, 2, 10}, {4, 11, 8}, {4, 6, 11}},
	/* 151 */ {{2, 4, 3}, {3, 6, 11}, {3, 4, 6}, {2, 9, 4}, {2, 10, 9}},
	/* 152 */ {{2, 4, 6}, {2, 8, 4}, {2, 3, 8}},
	/* 153 */ {{0, 6, 2}, {0, 4, 6}},
	/* 154 */ {{0, 1, 9}, {2, 4, 6}, {2, 8, 4}, {2, 3, 8}},
	/* 155 */ {{1, 6, 2}, {1, 4, 6}, {1, 9, 4}},
	/* 156 */ {{1, 6, 10}, {1, 4, 6}, {1, 8, 4}, {1, 3, 8}},
	/* 157 */ {{0, 10, 1}, {0, 6, 10}, {0, 4, 6}},
	/* 158 */ {{0, 10, 9}, {0, 6, 10}, {0, 3, 6}, {6, 8, 4}, {6, 3, 8}},
	/* 159 */ {{4, 10, 9}, {4, 6, 10}},
	/* 160 */ {{4, 9, 5}, {6, 11, 7}},
	/* 161 */ {{0, 8, 3}, {4, 9, 5}, {6, 11, 7}},
	/* 162 */ {{0, 5, 4}, {0, 1, 5}, {6, 11, 7}},
	/* 163 */ {{1, 8, 3}, {1, 4, 8}, {1, 5, 4}, {6, 11, 7}},
	/* 164 */ {{1, 2, 10}, {4, 9, 5}, {6, 11, 7}},
	/* 165 */ {{0, 8, 3}, {1, 2, 10}, {4, 9, 5}, {6, 11, 7}},
	/* 166 */ {{0, 5, 4}, {0, 10, 5}, {0, 2, 10}, {6, 11, 7}},
	/* 167 */ {{2, 8, 3}, {2, 4, 8}, {2, 5, 4}, {2, 10, 5}, {6, 11, 7}},
	/* 168 */ {{2, 7, 6}, {2, 3, 7}, {4, 9, 5}},
	/* 169 */ {{0, 6, 2}, {0, 7, 6}, {0, 8, 7}, {4, 9, 5}},
	/* 170 */ {{0, 5, 4}, {0, 1, 5}, {2, 7, 6}, {2, 3, 7}},
	/* 171 */ {{1, 6, 2}, {1, 7, 6}, {1, 8, 7}, {1, 4, 8}, {1, 5, 4}},
	/* 172 */ {{1, 6, 10}, {1, 7, 6}, {1, 3, 7}, {4, 9, 5}},
	/* 173 */ {{0, 10, 1}, {0, 6, 10}, {0, 7, 6}, {0, 8, 7}, {4, 9, 5}},
	/* 174 */ {{0, 5, 4}, {0, 10, 5}, {0, 6, 10}, {0, 7, 6}, {0, 3, 7}},
	/* 175 */ {{4, 10, 5}, {4, 8, 10}, {10, 7, 6}, {10, 8, 7}},
	/* 176 */ {{5, 8, 9}, {5, 11, 8}, {5, 6, 11}},
	/* 177 */ {{0, 11, 3}, {0, 6, 11}, {0, 5, 6}, {0, 9, 5}},
	/* 178 */ {{0, 11, 8}, {0, 6, 11}, {0, 5, 6}, {0, 1, 5}},
	/* 179 */ {{1, 11, 3}, {1, 6, 11}, {1, 5, 6}},
	/* 180 */ {{1, 2, 10}, {5, 8, 9}, {5, 11, 8}, {5, 6, 11}},
	/* 181 */ {{0, 11, 3}, {0, 6, 11}, {0, 5, 6}, {0, 9, 5}, {1, 2, 10}},
	/* 182 */ {{0, 11, 8}, {0, 6, 11}, {0, 5, 6}, {0, 10, 5}, {0, 2, 10}},
	/* 183 */ {{2, 5, 3}, {3, 6, 11}, {3, 5, 6}, {2, 10, 5}},
	/* 184 */ {{2, 5, 6}, {2, 9, 5}, {2, 8, 9}, {2, 3, 8}},
	/* 185 */ {{0, 6, 2}, {0, 5, 6}, {0, 9, 5}},
	/* 186 */ {{0, 6, 8}, {8, 2, 3}, {8, 6, 2}, {0, 5, 6}, {0, 1, 5}},
	/* 187 */ {{1, 6, 2}, {1, 5, 6}},
	/* 188 */ {{1, 6, 10}, {1, 8, 6}, {6, 9, 5}, {6, 8, 9}, {1, 3, 8}},
	/* 189 */ {{0, 10, 1}, {0, 6, 10}, {0, 5, 6}, {0, 9, 5}},
	/* 190 */ {{0, 3, 8}, {5, 6, 10}},
	/* 191 */ {{5, 6, 10}},
	/* 192 */ {{5, 11, 7}, {5, 10, 11}},
	/* 193 */ {{0, 8, 3}, {5, 11, 7}, {5, 10, 11}},
	/* 194 */ {{0, 1, 9}, {5, 11, 7}, {5, 10, 11}},
	/* 195 */ {{1, 8, 3}, {1, 9, 8}, {5, 11, 7}, {5, 10, 11}},
	/* 196 */ {{1, 7, 5}, {1, 11, 7}, {1, 2, 11}},
	/* 197 */ {{0, 8, 3}, {1, 7, 5}, {1, 11, 7}, {1, 2, 11}},
	/* 198 */ {{0, 5, 9}, {0, 7, 5}, {0, 11, 7}, {0, 2, 11}},
	/* 199 */ {{2, 8, 3}, {2, 9, 8}, {2, 5, 9}, {2, 7, 5}, {2, 11, 7}},
	/* 200 */ {{2, 5, 10}, {2, 7, 5}, {2, 3, 7}},
	/* 201 */ {{0, 10, 2}, {0, 5, 10}, {0, 7, 5}, {0, 8, 7}},
	/* 202 */ {{0, 1, 9}, {2, 5, 10}, {2, 7, 5}, {2, 3, 7}},
	/* 203 */ {{1, 7, 2}, {2, 5, 10}, {2, 7, 5}, {1, 8, 7}, {1, 9, 8}},
	/* 204 */ {{1, 7, 5}, {1, 3, 7}},
	/* 205 */ {{0, 5, 1}, {0, 7, 5}, {0, 8, 7}},
	/* 206 */ {{0, 5, 9}, {0, 7, 5}, {0, 3, 7}},
	/* 207 */ {{5, 8, 7}, {5, 9, 8}},
	/* 208 */ {{4, 11, 8}, {4, 10, 11}, {4, 5, 10}},
	/* 209 */ {{0, 11, 3}, {0, 10, 11}, {0, 5, 10}, {0, 4, 5}},
	/* 210 */ {{0, 1, 9}, {4, 11, 8}, {4, 10, 11}, {4, 5, 10}},
	/* 211 */ {{1, 11, 3}, {1, 4, 11}, {11, 5, 10}, {11, 4, 5}, {1, 9, 4}},
	/* 212 */ {{1, 4, 5}, {1, 8, 4}, {1, 11, 8}, {1, 2, 11}},
	/* 213 */ {{0, 11, 3}, {0, 5, 11}, {11, 1, 2}, {11, 5, 1}, {0, 4, 5}},
	/* 214 */ {{0, 5, 9}, {0, 11, 5}, {5, 8, 4}, {5, 11, 8}, {0, 2, 11}},
	/* 215 */ {{2, 11, 3}, {4, 5, 9}},
	/* 216 */ {{2, 5, 10}, {2, 4, 5}, {2, 8, 4}, {2, 3, 8}},
	/* 217 */ {{0, 10, 2}, {0, 5, 10}, {0, 4, 5}},
	/* 218 */ {{0, 1, 9}, {2, 5, 10}, {2, 4, 5}, {2, 8, 4}, {2, 3, 8}},
	/* 219 */ {{1, 4, 2}, {2, 5, 10}, {2, 4, 5}, {1, 9, 4}},
	/* 220 */ {{1, 4, 5}, {1, 8, 4}, {1, 3, 8}},
	/* 221 */ {{0, 5, 1}, {0, 4, 5}},
	/* 222 */ {{0, 5, 9}, {0, 3, 5}, {5, 8, 4}, {5, 3, 8}},
	/* 223 */ {{4, 5, 9}},
	/* 224 */ {{4, 11, 7}, {4, 10, 11}, {4, 9, 10}},
	/* 225 */ {{0, 8, 3}, {4, 11, 7}, {4, 10, 11}, {4, 9, 10}},
	/* 226 */ {{0, 7, 4}, {0, 11, 7}, {0, 10, 11}, {0, 1, 10}},
	/* 227 */ {{1, 8, 3}, {1, 4, 8}, {1, 7, 4}, {1, 11, 7}, {1, 10, 11}},
	/* 228 */ {{1, 4, 9}, {1, 7, 4}, {1, 11, 7}, {1, 2, 11}},
	/* 229 */ {{0, 8, 3}, {1, 4, 9}, {1, 7, 4}, {1, 11, 7}, {1, 2, 11}},
	/* 230 */ {{0, 7, 4}, {0, 11, 7}, {0, 2, 11}},
	/* 231 */ {{2, 8, 3}, {2, 4, 8}, {2, 7, 4}, {2, 11, 7}},
	/* 232 */ {{2, 9, 10}, {2, 4, 9}, {2, 7, 4}, {2, 3, 7}},
	/* 233 */ {{0, 10, 2}, {0, 7, 10}, {10, 4, 9}, {10, 7, 4}, {0, 8, 7}},
	/* 234 */ {{0, 7, 4}, {0, 10, 7}, {7, 2, 3}, {7, 10, 2}, {0, 1, 10}},
	/* 235 */ {{1, 10, 2}, {4, 8, 7}},
	/* 236 */ {{1, 4, 9}, {1, 7, 4}, {1, 3, 7}},
	/* 237 */ {{0, 7, 1}, {1, 4, 9}, {1, 7, 4}, {0, 8, 7}},
	/* 238 */ {{0, 7, 4}, {0, 3, 7}},
	/* 239 */ {{4, 8, 7}},
	/* 240 */ {{8, 10, 11}, {8, 9, 10}},
	/* 241 */ {{0, 11, 3}, {0, 10, 11}, {0, 9, 10}},
	/* 242 */ {{0, 11, 8}, {0, 10, 11}, {0, 1, 10}},
	/* 243 */ {{1, 11, 3}, {1, 10, 11}},
	/* 244 */ {{1, 8, 9}, {1, 11, 8}, {1, 2, 11}},
	/* 245 */ {{0, 11, 3}, {0, 9, 11}, {11, 1, 2}, {11, 9, 1}},
	/* 246 */ {{0, 11, 8}, {0, 2, 11}},
	/* 247 */ {{2, 11, 3}},
	/* 248 */ {{2, 9, 10}, {2, 8, 9}, {2, 3, 8}},
	/* 249 */ {{0, 10, 2}, {0, 9, 10}},
	/* 250 */ {{0, 10, 8}, {8, 2, 3}, {8, 10, 2}, {0, 1, 10}},
	/* 251 */ {{1, 10, 2}},
	/* 252 */ {{1, 8, 9}, {1, 3, 8}},
	/* 253 */ {{0, 9, 1}},
	/* 254 */ {{0, 3, 8}},
	/* 255 */ {},
}
