package maze

// Rules describes the contract every generated maze image satisfies.
const Rules = `What are the rules for maze images?
---------------

- Walls are black pixels and paths are white pixels, one pixel per cell

- Walls around the entire maze

- One entrance on the top row and one exit on the bottom row`
